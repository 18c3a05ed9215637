package domain

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	// RoleAdmin pode disparar envios e consultar tudo
	RoleAdmin Role = "admin"
	// RoleViewer só consulta status, histórico e prévias
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// Claims identifica quem chama a API; o Subject é o nome do operador ou da integração
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
