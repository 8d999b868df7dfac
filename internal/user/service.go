package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/outcome"
	"github.com/Marco16005/pag-web-web/internal/user/entity"
	userrepo "github.com/Marco16005/pag-web-web/internal/user/repo"
)

// PasswordHasher defines minimal hashing interface (abstract so we can swap to argon2 later).
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// UserService orchestrates registration, login and admin user management.
type UserService struct {
	repo   *userrepo.UserRepo
	hasher PasswordHasher
}

func NewUserService(gw gateway.Gateway, hasher PasswordHasher) *UserService {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 10}
	}
	return &UserService{repo: userrepo.NewUserRepo(gw), hasher: hasher}
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid credentials")
)

// RegisterInput holds validated registration fields with the plaintext password.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	Gender    string
	BirthDate string
}

// Register hashes the password and calls registrar_usuario.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (outcome.Sentinel, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}
	return s.repo.Register(ctx, entity.Registration{
		Email:        strings.TrimSpace(in.Email),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		Gender:       strings.ToLower(in.Gender),
		BirthDate:    in.BirthDate,
	})
}

// Authenticate fetches the login row by email and verifies the password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.AuthView, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.PasswordHash == "" || !s.hasher.Verify(u.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return &entity.AuthView{ID: u.ID, Name: u.Username, Email: u.Email, Role: u.Role}, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, u entity.Update) (outcome.Sentinel, error) {
	return s.repo.Update(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, id int64) (outcome.Sentinel, error) {
	return s.repo.Delete(ctx, id)
}
