package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// DemoCredential is a login known to the service before any persistence exists
type DemoCredential struct {
	User     domain.User
	Password string
}

// DemoCredentials are the built-in accounts.
var DemoCredentials = []DemoCredential{
	{User: domain.User{ID: "1", Email: "admin@attendance.com", Name: "John Admin", Role: domain.RoleAdmin}, Password: "admin123"},
	{User: domain.User{ID: "2", Email: "staff@attendance.com", Name: "Jane Staff", Role: domain.RoleStaff}, Password: "staff123"},
	{User: domain.User{ID: "3", Email: "mike@attendance.com", Name: "Mike Johnson", Role: domain.RoleStaff}, Password: "mike123"},
}

type account struct {
	user domain.User
	hash []byte
}

// AuthClaims is the JWT payload issued on login
type AuthClaims struct {
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig configures token signing
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int
}

// AuthService authenticates the demo accounts and keeps the current session.
type AuthService struct {
	sessions domain.SessionRepository
	clock    domain.Clock
	secret   []byte
	ttl      time.Duration
	accounts map[string]account
}

// NewAuthService hashes the given credentials and returns the service.
func NewAuthService(sessions domain.SessionRepository, clock domain.Clock, cfg AuthConfig, creds []DemoCredential) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("auth secret must not be empty")
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	accounts := make(map[string]account, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", c.User.Email, err)
		}
		accounts[c.User.Email] = account{user: c.User, hash: hash}
	}

	return &AuthService{
		sessions: sessions,
		clock:    clock,
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		accounts: accounts,
	}, nil
}

// Login checks the credentials, persists the session and issues a token.
// Bad credentials are reported in the result; the error is for infrastructure failures.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	acc, ok := s.accounts[email]
	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		logger.InfoLog(ctx, "Failed login for %s", email)
		return domain.LoginResult{Success: false, Error: invalidCredentials}, nil
	}

	token, expiresAt, err := s.issueToken(acc.user)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if err := s.sessions.Save(ctx, acc.user); err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to save session: %w", err)
	}

	user := acc.user
	logger.InfoLog(ctx, "User %s logged in", user.ID)
	return domain.LoginResult{Success: true, User: &user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout drops the persisted session. All logins share one session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser restores the persisted session, if any.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, bool, error) {
	return s.sessions.Load(ctx)
}

// VerifyToken validates a token issued by Login and returns its user.
func (s *AuthService) VerifyToken(tokenString string) (domain.User, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return domain.User{}, domain.ErrInvalidToken
	}
	return domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}

func (s *AuthService) issueToken(user domain.User) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	claims := AuthClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
