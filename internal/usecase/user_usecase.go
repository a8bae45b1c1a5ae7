package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials   = errors.New("username, password, and role are required")
	ErrInvalidRole          = errors.New("invalid role specified")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAdminExists          = errors.New("only one admin account is allowed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrAccountPending       = errors.New("account is pending admin approval")
	ErrAccountRejected      = errors.New("account registration was rejected")
	ErrUserAlreadyApproved  = errors.New("user is already approved")
	ErrCannotRejectApproved = errors.New("cannot reject an approved user")
)

type SignupInput struct {
	Username string
	Password string
	Role     entities.Role
}

type SignupResult struct {
	User         entities.User
	AutoApproved bool
}

// IUserUseCase covers account lifecycle: signup with admin approval, login,
// and the admin approval queue. Accounts default to the "user" role and stay
// unapproved until an admin acts; the very first admin approves itself.

type IUserUseCase interface {
	Signup(ctx context.Context, in SignupInput) (SignupResult, error)
	Login(ctx context.Context, username, password string) (entities.User, string, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListPending(ctx context.Context) ([]entities.User, error)
	Approve(ctx context.Context, id string) (entities.User, error)
	Reject(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenService
	now    func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenService) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens, now: time.Now}
}

func (u *UserUseCase) Signup(ctx context.Context, in SignupInput) (SignupResult, error) {
	username := strings.TrimSpace(in.Username)
	role := in.Role
	if role == "" {
		role = entities.RoleUser
	}
	if username == "" || in.Password == "" {
		return SignupResult{}, ErrMissingCredentials
	}
	if !role.Valid() {
		return SignupResult{}, ErrInvalidRole
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return SignupResult{}, err
	}
	if existing.ID != "" {
		return SignupResult{}, ErrUsernameTaken
	}

	total, err := u.repo.Count(ctx)
	if err != nil {
		return SignupResult{}, err
	}

	firstAdmin := false
	if role == entities.RoleAdmin {
		admins, err := u.repo.CountByRole(ctx, entities.RoleAdmin)
		if err != nil {
			return SignupResult{}, err
		}
		if admins > 0 {
			return SignupResult{}, ErrAdminExists
		}
		firstAdmin = total == 0
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return SignupResult{}, err
	}

	created, err := u.repo.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Approved:     firstAdmin,
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		return SignupResult{}, err
	}

	log.Printf("[user][usecase] signup username=%s role=%s auto_approved=%t", created.Username, created.Role, firstAdmin)
	return SignupResult{User: created, AutoApproved: firstAdmin}, nil
}

func (u *UserUseCase) Login(ctx context.Context, username, password string) (entities.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, "", ErrMissingCredentials
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, "", err
	}
	// Hide whether the account exists behind one generic error.
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if user.Rejected {
		return entities.User{}, "", ErrAccountRejected
	}
	if !user.Approved {
		return entities.User{}, "", ErrAccountPending
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) ListPending(ctx context.Context) ([]entities.User, error) {
	pending, err := u.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	// Oldest signups first so the approval queue is worked in order.
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

func (u *UserUseCase) Approve(ctx context.Context, id string) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.Approved {
		return entities.User{}, ErrUserAlreadyApproved
	}
	return u.repo.UpdateApproval(ctx, user.ID, true, false)
}

func (u *UserUseCase) Reject(ctx context.Context, id string) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.Approved {
		return entities.User{}, ErrCannotRejectApproved
	}
	return u.repo.UpdateApproval(ctx, user.ID, false, true)
}
