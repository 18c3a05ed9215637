package authenticating

import (
	"errors"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidRole   = errors.New("perfil inválido")
	ErrMissingSecret = errors.New("segredo de assinatura não configurado")
	ErrMissingUser   = errors.New("sujeito do token não informado")
)

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidRole)
}
