package services

import (
	"time"

	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/internal/security"
	"github.com/chirp-social/chirp/pkg/errors"
)

// UserStore is the slice of the user repository the identity service
// depends on.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	UsernameOrEmailTaken(username, email string) (bool, error)
}

// AuthService owns registration and credential checks. The rest of the
// core only ever sees the authenticated user id it puts in the token.
type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(username, email, password string) (*UserView, error) {
	taken, err := s.users.UsernameOrEmailTaken(username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "username or email already in use")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to hash password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	view := newUserView(user)
	return &view, nil
}

// Login checks the credentials and issues a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *UserView, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return "", nil, errors.New(errors.ErrCodeUnauthorized, "invalid email or password")
		}
		return "", nil, err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return "", nil, errors.New(errors.ErrCodeUnauthorized, "invalid email or password")
	}

	token, err := security.GenerateJWT(user.ID, user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to issue token")
	}

	view := newUserView(user)
	return token, &view, nil
}
