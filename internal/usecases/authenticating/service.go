package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const issuer = "performance-report"

type Authenticator interface {
	IssueToken(subject string, role domain.Role, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) *Service {
	if cfg.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET vazio, nenhum token será aceito")
	}

	return &Service{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}
}

// IssueToken assina um token HS256 para o sujeito; ttl zero usa o padrão configurado
func (s *Service) IssueToken(subject string, role domain.Role, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if subject == "" {
		return "", ErrMissingUser
	}
	if !role.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return claims, nil
}
