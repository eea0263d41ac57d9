package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
	"github.com/jhoicas/turismo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase registro y login de empresas y viajeros.
type UseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{companyRepo: companyRepo, userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterCompany crea una empresa activa con email y licencia únicos y
// devuelve un token de sesión.
func (uc *UseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.TokenResponse, error) {
	ve := &domain.ValidationError{}
	if in.Name == "" {
		ve.Addf("name", "el nombre es requerido")
	}
	if in.LicenseNumber == "" {
		ve.Addf("license_number", "la licencia es requerida")
	}
	if in.Email == "" {
		ve.Addf("email", "el email es requerido")
	}
	if len(in.Password) < 8 {
		ve.Addf("password", "mínimo 8 caracteres")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	if existing, _ := uc.companyRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.companyRepo.GetByLicense(ctx, in.LicenseNumber); existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		LicenseNumber: in.LicenseNumber,
		Email:         in.Email,
		Phone:         in.Phone,
		PasswordHash:  string(hash),
		Status:        entity.CompanyStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return uc.token(company.ID, jwt.KindCompany, company.Name, company.Email)
}

// LoginCompany valida credenciales y estado de la empresa.
// Una empresa suspendida no puede iniciar sesión.
func (uc *UseCase) LoginCompany(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	company, err := uc.companyRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	if !company.IsActive() {
		return nil, domain.ErrCompanySuspended
	}
	return uc.token(company.ID, jwt.KindCompany, company.Name, company.Email)
}

// RegisterUser crea un viajero con email único y devuelve un token de sesión.
func (uc *UseCase) RegisterUser(ctx context.Context, in dto.RegisterUserRequest) (*dto.TokenResponse, error) {
	ve := &domain.ValidationError{}
	if in.Name == "" {
		ve.Addf("name", "el nombre es requerido")
	}
	if in.Email == "" {
		ve.Addf("email", "el email es requerido")
	}
	if len(in.Password) < 8 {
		ve.Addf("password", "mínimo 8 caracteres")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	if existing, _ := uc.userRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.token(user.ID, jwt.KindUser, user.Name, user.Email)
}

// LoginUser valida credenciales de un viajero.
func (uc *UseCase) LoginUser(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.token(user.ID, jwt.KindUser, user.Name, user.Email)
}

func (uc *UseCase) token(id, kind, name, email string) (*dto.TokenResponse, error) {
	tok, err := jwt.Generate(uc.jwtCfg.Secret, id, kind, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: tok, ID: id, Name: name, Email: email}, nil
}
