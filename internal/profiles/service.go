package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/pkg/db"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type profileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	Create(ctx context.Context, dto CreateProfileDTO) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

// Service exposes profile operations.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	GetByEmail(ctx context.Context, email string) (*ProfileDTO, error)
	Create(ctx context.Context, input CreateProfileInput) (*ProfileDTO, error)
	Update(ctx context.Context, actor *ProfileDTO, id uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error)
}

// CreateProfileInput captures a first-login provisioning request. The id is
// the authenticated token subject; callers cannot choose it.
type CreateProfileInput struct {
	ID       uuid.UUID
	Email    string
	FullName *string
	Role     *enums.Role
}

// UpdateProfileInput captures the allowed profile fields for mutation.
type UpdateProfileInput struct {
	FullName *string
	Role     *enums.Role
}

type service struct {
	repo profileRepository
}

// NewService builds a profile service with the provided repository.
func NewService(repo profileRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*ProfileDTO, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	profile, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) Create(ctx context.Context, input CreateProfileInput) (*ProfileDTO, error) {
	if input.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile id is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid email")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	profile, err := s.repo.Create(ctx, CreateProfileDTO{
		ID:       input.ID,
		Email:    email,
		FullName: input.FullName,
		Role:     input.Role,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "profile already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create profile")
	}
	return FromModel(profile), nil
}

func (s *service) Update(ctx context.Context, actor *ProfileDTO, id uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}
	// Only superadmins may touch other profiles or change roles.
	if actor.ID != id && actor.Role != enums.RoleSuperAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot update another profile")
	}
	if input.Role != nil {
		if actor.Role != enums.RoleSuperAdmin {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "role changes require superadmin")
		}
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}

	if input.FullName != nil {
		cpy := *input.FullName
		profile.FullName = &cpy
	}
	if input.Role != nil {
		profile.Role = *input.Role
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile")
	}
	return FromModel(profile), nil
}
