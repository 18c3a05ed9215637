package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Source devolve as migrações embutidas no binário
func Source() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Up aplica as migrações pendentes; um banco sujo é forçado para a última versão registrada
func Up(db *sql.DB) error {
	src, err := Source()
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("erro ao obter versão das migrações: %w", err)
	}

	if dirty {
		logrus.WithField("version", version).Warn("Banco em estado sujo, forçando versão")
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("erro ao forçar versão: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.WithField("version", version).Info("Nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	newVersion, _, _ := m.Version()
	logrus.WithField("version", newVersion).Info("Migrações aplicadas")

	return nil
}
