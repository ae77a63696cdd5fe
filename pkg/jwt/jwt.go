package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del portal.
// Rol viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	FerreteriaID string `json:"ferreteria_id"`
	Rol          string `json:"rol"` // "admin" | "vendedor"
}

// Identity es el resultado tipado de una verificación exitosa.
type Identity struct {
	UserID       string
	FerreteriaID string
	Rol          string
	Issuer       string // nombre del verificador que aceptó el token
}

// Verifier valida tokens firmados con un secreto HS256 concreto.
// Name identifica al emisor (ej. "portal", "legacy") y aparece en Identity.Issuer.
type Verifier struct {
	Name   string
	Secret string
}

// Parse valida el token contra el secreto del verificador.
func (v Verifier) Parse(tokenString string) (*Identity, error) {
	if v.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío para verificador %q", v.Name)
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	return &Identity{
		UserID:       claims.UserID,
		FerreteriaID: claims.FerreteriaID,
		Rol:          claims.Rol,
		Issuer:       v.Name,
	}, nil
}

// Chain es una lista ordenada de verificadores: se intenta cada uno en orden
// y gana el primero que acepte el token. Reemplaza el antiguo doble try/catch
// de secreto gestionado + secreto local por emisores explícitos.
type Chain []Verifier

// NewChain construye la cadena: el secreto primario siempre presente y el
// legacy solo si no está vacío.
func NewChain(secret, legacySecret string) Chain {
	ch := Chain{{Name: "portal", Secret: secret}}
	if legacySecret != "" {
		ch = append(ch, Verifier{Name: "legacy", Secret: legacySecret})
	}
	return ch
}

// Parse intenta los verificadores en orden. Si ninguno acepta, devuelve el
// error del último (un token expirado reporta expiración, no "firma inválida").
func (ch Chain) Parse(tokenString string) (*Identity, error) {
	if len(ch) == 0 {
		return nil, errors.New("jwt: cadena de verificadores vacía")
	}
	var lastErr error
	for _, v := range ch {
		id, err := v.Parse(tokenString)
		if err == nil {
			return id, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Generate genera un token JWT firmado por el emisor primario, con userID,
// ferreteriaID y rol embebidos.
func Generate(secret, userID, ferreteriaID, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       userID,
		FerreteriaID: ferreteriaID,
		Rol:          rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
