package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-edustream-app/internal/core/domain/accounts"
	"go-edustream-app/internal/core/ports"
)

// TokenPrefix is prepended to issued tokens; clients echo it back in the
// Authorization header.
const TokenPrefix = "Bearer "

type AuthService struct {
	users     ports.UserRepository
	folders   ports.FolderRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, folders ports.FolderRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		folders:   folders,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a user and their required "Liked Videos" folder.
// The email pre-check produces the friendly conflict error; the unique
// constraint in the store closes the remaining race, surfacing as the same
// accounts.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in accounts.RegistrationInput) error {
	if fieldErrors := in.Validate(); len(fieldErrors) > 0 {
		return accounts.ErrValidation
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return accounts.ErrEmailTaken
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := accounts.User{
		ID:                   uuid.NewString(),
		Name:                 in.Name,
		Email:                in.Email,
		EducationInstitution: in.EducationInstitution,
		PasswordHash:         string(hashed),
	}
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	folder := accounts.Folder{
		ID:         uuid.NewString(),
		Name:       accounts.DefaultFolderName,
		OwnerID:    user.ID,
		IsRequired: true,
	}
	if err := s.folders.Save(ctx, folder); err != nil {
		return fmt.Errorf("failed to create default folder: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a bearer-prefixed signed token
// carrying {id, name}. Unknown emails and wrong passwords are reported as
// distinct errors; the REST layer maps them to distinct statuses.
func (s *AuthService) Login(ctx context.Context, in accounts.LoginInput) (string, error) {
	if fieldErrors := in.Validate(); len(fieldErrors) > 0 {
		return "", accounts.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return "", accounts.ErrNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", accounts.ErrInvalidCredentials
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return TokenPrefix + signed, nil
}

func (s *AuthService) issueToken(user accounts.User) (string, error) {
	claims := accounts.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Name:   user.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates signature and expiry and returns the embedded claims.
func (s *AuthService) VerifyToken(tokenString string) (accounts.Claims, error) {
	return VerifyToken(tokenString, s.jwtSecret)
}

// VerifyToken is the package-level verification primitive, shared with the
// REST auth middleware so it does not need the full service.
func VerifyToken(tokenString string, secret []byte) (accounts.Claims, error) {
	claims := &accounts.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, accounts.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return accounts.Claims{}, accounts.ErrInvalidToken
	}
	return *claims, nil
}
