package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
	"github.com/invoicefy/invoicefy-api/pkg/gst"
	"github.com/invoicefy/invoicefy-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistrationTxRunner ejecuta el alta de empresa + usuario propietario en
// una sola transacción: si el usuario falla, la empresa no queda huérfana.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro de empresa y login.
type AuthUseCase struct {
	txRunner     RegistrationTxRunner
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner RegistrationTxRunner, userRepo repository.UserRepository, businessRepo repository.BusinessRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, businessRepo: businessRepo, jwtCfg: jwtCfg}
}

// Register crea la empresa y su usuario propietario, y emite el token.
// El GSTIN se valida en formato y unicidad antes de cualquier escritura; la
// empresa y el usuario se crean en la misma transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	verr := &domain.ValidationError{}
	if in.OwnerName == "" {
		verr.Add("ownerName", "el nombre del propietario es obligatorio")
	}
	if in.Email == "" {
		verr.Add("email", "el email es obligatorio")
	}
	if len(in.Password) < 6 {
		verr.Add("password", "la contraseña debe tener al menos 6 caracteres")
	}
	if in.BusinessName == "" {
		verr.Add("businessName", "el nombre de la empresa es obligatorio")
	}
	if in.Address == "" {
		verr.Add("address", "la dirección es obligatoria")
	}
	if err := gst.Validate(in.GSTNumber); err != nil {
		verr.Add("gstNumber", "GSTIN inválido (ej. 27AAPFU0939F1ZV)")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if existing, _ := uc.userRepo.FindByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	gstin := gst.Normalize(in.GSTNumber)
	if existing, _ := uc.businessRepo.GetByGSTNumber(gstin); existing != nil {
		return nil, domain.ErrGSTAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	business := &entity.Business{
		ID:        uuid.New().String(),
		Name:      in.BusinessName,
		GSTNumber: gstin,
		Address:   in.Address,
		LogoURL:   in.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		BusinessID:   business.ID,
		Name:         in.OwnerName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		businessRepo repository.BusinessRepository,
		userRepo repository.UserRepository,
	) error {
		if err := businessRepo.Create(business); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, business.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		User:     toUserResponse(user),
		Business: toBusinessResponse(business),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario + empresa.
// Credenciales malas fallan siempre con ErrUnauthorized, sin distinguir si el
// email existe.
func (uc *AuthUseCase) Login(_ context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("email", "email y contraseña son obligatorios")
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	business, err := uc.businessRepo.GetByID(user.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BusinessID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		User:     toUserResponse(user),
		Business: toBusinessResponse(business),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

func toBusinessResponse(b *entity.Business) dto.BusinessResponse {
	return dto.BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		GSTNumber: b.GSTNumber,
		Address:   b.Address,
		LogoURL:   b.LogoURL,
		CreatedAt: b.CreatedAt,
	}
}
