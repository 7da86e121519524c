// Package service contains application services for authentication and tasks.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/focusflow/backend/internal/crypto"
	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
	"github.com/focusflow/backend/internal/token"
)

// AuthService defines signup, login and profile operations.
type AuthService interface {
	// Signup creates a new user; PII is encrypted and indexed, the password hashed.
	Signup(ctx context.Context, username, email, password string) (userID string, err error)
	// Login verifies credentials and issues a session token.
	// Returns errs.ErrNotFound or errs.ErrBadCredentials; callers must not
	// let clients tell the two apart.
	Login(ctx context.Context, email, password string) (model.Session, error)
	// Profile returns the decrypted view of the user's own record.
	Profile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	codec  *pkgcrypto.Codec
	index  *pkgcrypto.Indexer
	tokens *token.Service

	// decoyHash is verified against on the unknown-email path so that a
	// login miss costs the same as a password mismatch.
	decoyHash string
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, codec *pkgcrypto.Codec, index *pkgcrypto.Indexer, tokens *token.Service) *AuthServiceImpl {
	decoy, _ := pkgcrypto.HashPassword("focusflow-login-decoy")
	return &AuthServiceImpl{users: users, codec: codec, index: index, tokens: tokens, decoyHash: decoy}
}

// Signup builds the user record so that ciphertext and lookup columns derive
// from the same request values, then inserts it. The store's uniqueness
// constraint decides duplicate emails; there is no separate existence check.
func (s *AuthServiceImpl) Signup(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: username, email and password are required", errs.ErrValidation)
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	usernameEnc, err := s.codec.Encrypt(username)
	if err != nil {
		return "", err
	}
	emailEnc, err := s.codec.Encrypt(email)
	if err != nil {
		return "", err
	}
	pwdHash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	u := &model.User{
		ID:             uid,
		UsernameEnc:    usernameEnc,
		EmailEnc:       emailEnc,
		UsernameLookup: s.index.Index(username),
		EmailLookup:    s.index.Index(email),
		PasswordHash:   pwdHash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return uid.String(), nil
}

// Login finds the user through the email lookup digest (never by decrypting
// rows), verifies the password and issues a token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (model.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.Session{}, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	u, err := s.users.GetByEmailLookup(ctx, s.index.Index(email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			pkgcrypto.VerifyPassword(password, s.decoyHash)
		}
		return model.Session{}, err
	}
	if !pkgcrypto.VerifyPassword(password, u.PasswordHash) {
		return model.Session{}, errs.ErrBadCredentials
	}

	profile, err := s.decrypt(u)
	if err != nil {
		return model.Session{}, err
	}
	signed, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{Token: signed, ExpiresAt: exp, User: profile}, nil
}

// Profile loads and decrypts the user's own record.
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}
	return s.decrypt(u)
}

func (s *AuthServiceImpl) decrypt(u *model.User) (model.Profile, error) {
	username, err := s.codec.Decrypt(u.UsernameEnc)
	if err != nil {
		return model.Profile{}, err
	}
	email, err := s.codec.Decrypt(u.EmailEnc)
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{ID: u.ID, Username: username, Email: email}, nil
}
