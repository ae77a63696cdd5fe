package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
)

type categoriaRepoMock struct{ mock.Mock }

func (m *categoriaRepoMock) Create(c *entity.Categoria) error {
	return m.Called(c).Error(0)
}

func (m *categoriaRepoMock) GetByID(id string) (*entity.Categoria, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*entity.Categoria)
	return c, args.Error(1)
}

func (m *categoriaRepoMock) Update(c *entity.Categoria) error {
	return m.Called(c).Error(0)
}

func (m *categoriaRepoMock) List(limit, offset int) ([]*entity.Categoria, error) {
	args := m.Called(limit, offset)
	list, _ := args.Get(0).([]*entity.Categoria)
	return list, args.Error(1)
}

func (m *categoriaRepoMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func str(s string) *string { return &s }

func TestCategoriaCreate_PadreInexistente_RetornaInvalidInput(t *testing.T) {
	repo := new(categoriaRepoMock)
	uc := usecase.NewCategoriaUseCase(repo)

	repo.On("GetByID", "cat-padre").Return(nil, nil)

	_, err := uc.Create(dto.CreateCategoriaRequest{Nombre: "Tornillería", ParentID: "cat-padre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoriaUpdate_PadreInexistente_RetornaInvalidInput(t *testing.T) {
	repo := new(categoriaRepoMock)
	uc := usecase.NewCategoriaUseCase(repo)

	repo.On("GetByID", "cat-1").Return(&entity.Categoria{ID: "cat-1", Nombre: "Tornillería"}, nil)
	repo.On("GetByID", "cat-fantasma").Return(nil, nil)

	_, err := uc.Update("cat-1", dto.UpdateCategoriaRequest{ParentID: str("cat-fantasma")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCategoriaUpdate_PropioPadre_RetornaInvalidInput(t *testing.T) {
	repo := new(categoriaRepoMock)
	uc := usecase.NewCategoriaUseCase(repo)

	repo.On("GetByID", "cat-1").Return(&entity.Categoria{ID: "cat-1", Nombre: "Tornillería"}, nil)

	_, err := uc.Update("cat-1", dto.UpdateCategoriaRequest{ParentID: str("cat-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCategoriaUpdate_DespejarPadre_NoConsultaPadre(t *testing.T) {
	repo := new(categoriaRepoMock)
	uc := usecase.NewCategoriaUseCase(repo)

	repo.On("GetByID", "cat-1").Return(&entity.Categoria{ID: "cat-1", Nombre: "Tornillería", ParentID: "cat-0"}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Categoria")).Return(nil)

	out, err := uc.Update("cat-1", dto.UpdateCategoriaRequest{ParentID: str("")})
	require.NoError(t, err)
	assert.Empty(t, out.ParentID)
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCategoriaUpdate_PadreValido_Persiste(t *testing.T) {
	repo := new(categoriaRepoMock)
	uc := usecase.NewCategoriaUseCase(repo)

	repo.On("GetByID", "cat-1").Return(&entity.Categoria{ID: "cat-1", Nombre: "Tornillería"}, nil)
	repo.On("GetByID", "cat-padre").Return(&entity.Categoria{ID: "cat-padre", Nombre: "Fijaciones"}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Categoria")).Return(nil)

	out, err := uc.Update("cat-1", dto.UpdateCategoriaRequest{ParentID: str("cat-padre")})
	require.NoError(t, err)
	assert.Equal(t, "cat-padre", out.ParentID)
}
