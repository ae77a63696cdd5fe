// Package rut valida el RUT chileno (Rol Único Tributario) con su dígito
// verificador módulo 11. Acepta formatos "12.345.678-5", "12345678-5" y
// "123456785"; el dígito verificador puede ser 0-9 o K.
package rut

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate verifica que el RUT tenga forma válida y dígito verificador correcto.
func Validate(rut string) error {
	body, dv, err := split(rut)
	if err != nil {
		return err
	}
	if len(body) < 7 || len(body) > 8 {
		return fmt.Errorf("rut: cuerpo debe tener 7 u 8 dígitos, se encontraron %d", len(body))
	}
	expected := computeDV(body)
	if dv != expected {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return nil
}

// ComputeDV calcula el dígito verificador para el cuerpo del RUT (solo dígitos).
func ComputeDV(body string) (byte, error) {
	digits := extractDigits(body)
	if len(digits) == 0 {
		return 0, fmt.Errorf("rut: cuerpo vacío")
	}
	return computeDV(digits), nil
}

// Normalize devuelve el RUT en forma canónica "NNNNNNNN-D" (sin puntos, DV en mayúscula).
func Normalize(rut string) (string, error) {
	body, dv, err := split(rut)
	if err != nil {
		return "", err
	}
	return string(body) + "-" + string(dv), nil
}

// computeDV aplica el módulo 11 chileno: pesos 2..7 cíclicos de derecha a
// izquierda; 11 -> '0', 10 -> 'K'.
func computeDV(body []byte) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch r := 11 - (sum % 11); r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}

// split separa cuerpo y dígito verificador, ignorando puntos y guiones.
func split(rut string) (body []byte, dv byte, err error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(rut)))
	if len(cleaned) < 2 {
		return nil, 0, fmt.Errorf("rut: demasiado corto")
	}
	last := cleaned[len(cleaned)-1]
	if last != 'K' && !unicode.IsDigit(rune(last)) {
		return nil, 0, fmt.Errorf("rut: dígito verificador inválido: %c", last)
	}
	for _, r := range cleaned[:len(cleaned)-1] {
		if !unicode.IsDigit(r) {
			return nil, 0, fmt.Errorf("rut: carácter inválido en el cuerpo: %c", r)
		}
	}
	return []byte(cleaned[:len(cleaned)-1]), last, nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
