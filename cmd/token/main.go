package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/authenticating"
)

// Emite um token Bearer assinado com AUTH_SECRET
func main() {
	subject := flag.String("subject", "", "nome do operador ou da integração")
	role := flag.String("role", string(domain.RoleViewer), "perfil: admin ou viewer")
	ttl := flag.Duration("ttl", 0, "validade do token (padrão: AUTH_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(*subject, domain.Role(*role), *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}

	fmt.Fprintln(os.Stdout, token)
}
