package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/config"
)

func TestConfigurePool(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Database
		expectedOpen int
	}{
		{
			name:         "Limites configurados",
			cfg:          config.Database{MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: 30 * time.Minute},
			expectedOpen: 5,
		},
		{
			name:         "Sem limites mantém o padrão ilimitado",
			cfg:          config.Database{},
			expectedOpen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			configurePool(db, tt.cfg)

			assert.Equal(t, tt.expectedOpen, db.Stats().MaxOpenConnections)
		})
	}
}

func TestConnection_Ping(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
	}{
		{name: "Banco disponível"},
		{name: "Banco indisponível", pingErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectPing().WillReturnError(tt.pingErr)

			err = NewFromDB(db).Ping(context.Background())

			if tt.pingErr != nil {
				assert.ErrorIs(t, err, tt.pingErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
