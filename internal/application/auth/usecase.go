package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ferreplus/ferreteria-api/internal/application/dto"
	"github.com/ferreplus/ferreteria-api/internal/domain"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/internal/domain/repository"
	"github.com/ferreplus/ferreteria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo    repository.UsuarioRepository
	ferreteriaRepo repository.FerreteriaRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, ferreteriaRepo repository.FerreteriaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, ferreteriaRepo: ferreteriaRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario del portal: valida la ferretería, hashea el password
// con bcrypt y persiste. Devuelve token + usuario para que el cliente quede
// autenticado sin segundo round-trip.
// Errores: ErrNotFound si la ferretería no existe, ErrEmailAlreadyExists si el
// email ya está registrado en esa ferretería.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, _ := uc.usuarioRepo.GetByEmailAndFerreteria(in.Email, in.FerreteriaID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	ferreteria, err := uc.ferreteriaRepo.GetByID(in.FerreteriaID)
	if err != nil {
		return nil, err
	}
	if ferreteria == nil {
		return nil, domain.ErrNotFound // la ferretería no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		FerreteriaID: in.FerreteriaID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          rol,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.FerreteriaID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUsuarioResponse(usuario)}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// ErrUserNotFound y ErrUnauthorized se colapsan en 401 en el handler para no
// revelar si el email existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.FerreteriaID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:           u.ID,
		FerreteriaID: u.FerreteriaID,
		Email:        u.Email,
		Nombre:       u.Nombre,
		Rol:          u.Rol,
		Estado:       u.Estado,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
