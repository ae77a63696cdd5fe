package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/pkg/rut"
)

func TestValidate_RUTsValidos(t *testing.T) {
	for _, s := range []string{
		"12.345.678-5",
		"12345678-5",
		"123456785",
		"11.111.111-1",
		"5.000.001-K",
		"5.000.001-k", // DV en minúscula también se acepta
	} {
		assert.NoError(t, rut.Validate(s), "RUT %q debe ser válido", s)
	}
}

func TestValidate_DigitoVerificadorIncorrecto(t *testing.T) {
	for _, s := range []string{
		"12.345.678-9",
		"11.111.111-K",
		"5.000.001-0",
	} {
		assert.Error(t, rut.Validate(s), "RUT %q debe rechazarse", s)
	}
}

func TestValidate_FormatoInvalido(t *testing.T) {
	for _, s := range []string{
		"",
		"-5",
		"abc.def.ghi-5",
		"1234-5",        // cuerpo demasiado corto
		"123.456.789-0", // 9 dígitos de cuerpo
	} {
		assert.Error(t, rut.Validate(s), "RUT %q debe rechazarse", s)
	}
}

func TestComputeDV(t *testing.T) {
	dv, err := rut.ComputeDV("12345678")
	require.NoError(t, err)
	assert.Equal(t, byte('5'), dv)

	dv, err = rut.ComputeDV("5000001")
	require.NoError(t, err)
	assert.Equal(t, byte('K'), dv)
}

func TestNormalize(t *testing.T) {
	got, err := rut.Normalize("12.345.678-5")
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", got)

	got, err = rut.Normalize("5.000.001-k")
	require.NoError(t, err)
	assert.Equal(t, "5000001-K", got)
}
