package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sa9r/storefront/internal/dto"
	"github.com/sa9r/storefront/internal/model"
	"github.com/sa9r/storefront/internal/repository"
)

var (
	ErrMissingPassword = errors.New("password is required")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)

type AdminService struct {
	sessionRepo  repository.SessionRepository
	orderRepo    repository.OrderRepository
	password     string
	passwordHash string
	sessionTTL   time.Duration
	log          *slog.Logger
}

// NewAdminService gates admin access behind a single shared secret. When
// passwordHash is non-empty it holds a bcrypt hash and takes precedence over
// the plaintext password.
func NewAdminService(sessionRepo repository.SessionRepository, orderRepo repository.OrderRepository, password, passwordHash string, sessionTTL time.Duration, log *slog.Logger) *AdminService {
	return &AdminService{
		sessionRepo:  sessionRepo,
		orderRepo:    orderRepo,
		password:     password,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
		log:          log,
	}
}

// Login checks the password and on success records a session with a fixed
// expiry window, returning its token.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if !s.checkPassword(password) {
		return "", ErrInvalidPassword
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	session := model.AdminSession{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Append(ctx, session); err != nil {
		s.log.Error("append session", "error", err)
		return "", fmt.Errorf("append session: %w", err)
	}
	return token, nil
}

// Verify succeeds iff the token exists in the session store and the session
// has not expired. Expired sessions are left in place; only logout removes
// them.
func (s *AdminService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		s.log.Error("get session", "error", err)
		return fmt.Errorf("get session: %w", err)
	}
	if session == nil || !session.Valid(time.Now().UTC()) {
		return ErrUnauthorized
	}
	return nil
}

// Logout removes the session unconditionally; unknown tokens are a no-op.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		s.log.Error("delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Stats derives the dashboard numbers freshly from the order collection on
// every call.
func (s *AdminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.log.Error("list orders for stats", "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}

	revenue := decimal.Zero
	emails := make(map[string]struct{})
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
		emails[o.Email] = struct{}{}
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(orders))))
	}

	return &dto.AdminStatsResponse{
		TotalOrders:       len(orders),
		TotalCustomers:    len(emails),
		TotalRevenue:      revenue,
		AverageOrderValue: avg,
	}, nil
}

func (s *AdminService) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
