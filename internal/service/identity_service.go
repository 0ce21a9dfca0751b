package service

import (
	"context"
	"errors"
	"time"

	entity "disaster-alert/internal/domain"
	mongorepo "disaster-alert/internal/repository/mongodb"
	"disaster-alert/pkg"

	"go.uber.org/zap"
)

type IdentityService struct {
	userRepo  mongorepo.UserRepository
	adminRepo mongorepo.UserRepository
	logger    *zap.Logger
}

func NewIdentityService(userRepo, adminRepo mongorepo.UserRepository, logger *zap.Logger) *IdentityService {
	return &IdentityService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Register creates a user account. The existence check is backed by the
// unique email index, so a concurrent duplicate still fails with ErrUserExists.
func (s *IdentityService) Register(ctx context.Context, input *entity.RegisterInput) error {
	return s.create(ctx, s.userRepo, "user", input)
}

// CreateAdmin provisions an admin account. There is no HTTP route for it.
func (s *IdentityService) CreateAdmin(ctx context.Context, input *entity.RegisterInput) error {
	return s.create(ctx, s.adminRepo, "admin", input)
}

func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	return s.verify(ctx, s.userRepo, email, password)
}

func (s *IdentityService) AuthenticateAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	return s.verify(ctx, s.adminRepo, email, password)
}

func (s *IdentityService) create(ctx context.Context, r mongorepo.UserRepository, kind string, input *entity.RegisterInput) error {
	existing, err := r.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &entity.User{
		Email:        input.Email,
		Password:     hashed,
		Name:         input.Name,
		MobileNumber: input.MobileNumber,
		Location:     input.Location,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		CreatedAt:    &now,
	}

	if err := r.Create(ctx, user); err != nil {
		if errors.Is(err, mongorepo.ErrDuplicateKey) {
			return ErrUserExists
		}
		return err
	}

	s.logger.Info("account registered",
		zap.String("kind", kind),
		zap.String("email", user.Email),
		zap.String("location", user.Location))
	return nil
}

func (s *IdentityService) verify(ctx context.Context, r mongorepo.UserRepository, email, password string) (*entity.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
