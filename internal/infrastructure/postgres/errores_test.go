package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ferreplus/ferreteria-api/internal/domain"
)

// failingQuerier devuelve siempre el mismo error, para probar la traducción
// de códigos de Postgres a errores de dominio sin una base real.
type failingQuerier struct{ err error }

func (q failingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q failingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("no usado en estos tests")
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestAjustarStock_CheckVioladoRetornaStockInsuficiente(t *testing.T) {
	// El CHECK stock >= 0 (23514) salta cuando la rebaja dentro de la tx
	// deja el stock negativo; debe traducirse, no envolverse como genérico.
	repo := NewProductoRepository(failingQuerier{err: pgError("23514")})

	err := repo.AjustarStock("prod-1", -6)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}

func TestAjustarStock_OtroErrorSeEnvuelve(t *testing.T) {
	repo := NewProductoRepository(failingQuerier{err: pgError("57014")})

	err := repo.AjustarStock("prod-1", -1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStockInsuficiente)
}

func TestDelete_FKVioladaRetornaConflict(t *testing.T) {
	q := failingQuerier{err: pgError("23503")}

	cases := []struct {
		name string
		del  func() (bool, error)
	}{
		{"categoria", func() (bool, error) { return NewCategoriaRepository(q).Delete("x") }},
		{"cliente", func() (bool, error) { return NewClienteRepository(q).Delete("x") }},
		{"ferreteria", func() (bool, error) { return NewFerreteriaRepository(q).Delete("x") }},
		{"producto", func() (bool, error) { return NewProductoRepository(q).Delete("x") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleted, err := tc.del()
			assert.False(t, deleted)
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestCodigosDeError(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505")))
	assert.True(t, isForeignKeyViolation(pgError("23503")))
	assert.True(t, isCheckViolation(pgError("23514")))

	assert.False(t, isUniqueViolation(pgError("23503")))
	assert.False(t, isForeignKeyViolation(pgError("23514")))
	assert.False(t, isCheckViolation(pgError("23505")))
}
