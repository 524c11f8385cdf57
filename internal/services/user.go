package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type CreateUserInput struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      domain.UserRole `json:"role"`
}

// UserService manages identities. Session issuance is handled outside this
// core; permission checks based on Role live with the callers.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userService struct {
	log   *logger.Logger
	users funnel.UserRepo
	audit audit.Recorder
}

func NewUserService(baseLog *logger.Logger, users funnel.UserRepo, rec audit.Recorder) UserService {
	return &userService{
		log:   baseLog.With("service", "UserService"),
		users: users,
		audit: rec,
	}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, &apperr.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if len(in.Password) < 8 {
		return nil, &apperr.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	role := in.Role
	if role == "" {
		role = domain.UserRoleContributor
	}
	if !role.IsValid() {
		return nil, &apperr.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", role)}
	}

	dbc := dbctx.Context{Ctx: ctx}
	exists, err := s.users.EmailExists(dbc, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &apperr.ValidationError{Field: "email", Reason: "already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.users.Create(dbc, []*domain.User{user}); err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityUserCreated,
		Description: fmt.Sprintf("user %s created", user.Email),
		EntityType:  "user",
		EntityID:    user.ID,
		ActorID:     user.ID,
	})
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(dbctx.Context{Ctx: ctx}, strings.ToLower(strings.TrimSpace(email)))
}
