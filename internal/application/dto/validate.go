package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate es la instancia compartida; los tags `validate:` de los DTOs se
// evalúan con ella antes de llegar a los casos de uso.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate evalúa los tags del struct y devuelve un mensaje legible con los
// campos inválidos, o nil si todo pasa.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidationMessage arma un mensaje corto "campo: regla" a partir del error
// del validador, para el cuerpo de la respuesta 400.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
