package clientfile

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrEmptyClientFile = errors.New("clientfile: nenhum cliente definido")

type fileClient struct {
	Name          string   `yaml:"name"`
	AccountType   string   `yaml:"account_type"`
	Dashboard     string   `yaml:"dashboard"`
	Budget        string   `yaml:"budget"`
	Dimension     string   `yaml:"dimension"`
	Plan          string   `yaml:"plan"`
	ReportDueDay  string   `yaml:"report_due_date"`
	ClientContext string   `yaml:"client_context"`
	DataConfig    *bool    `yaml:"data_config"`
	Recipients    []string `yaml:"recipients"`
}

type document struct {
	Clients []fileClient `yaml:"clients"`
}

// FileSource lê a lista de clientes de um arquivo YAML local
type FileSource struct {
	path string
}

func New(path string) *FileSource {
	return &FileSource{path: path}
}

// GetClients relê o arquivo a cada chamada; clientes inválidos são ignorados com log
func (s *FileSource) GetClients(ctx context.Context) ([]domain.Client, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "clientfile: erro ao ler %s", s.path)
	}
	return Parse(data)
}

// Parse decodifica o documento YAML e valida cada cliente
func Parse(data []byte) ([]domain.Client, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "clientfile: YAML inválido")
	}
	if len(doc.Clients) == 0 {
		return nil, ErrEmptyClientFile
	}

	clients := make([]domain.Client, 0, len(doc.Clients))
	for _, fc := range doc.Clients {
		client := fc.toDomain()
		if err := client.Validate(); err != nil {
			logrus.WithFields(logrus.Fields{
				"client": client.Name,
				"reason": err.Error(),
			}).Warn("clientfile: cliente ignorado")
			continue
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func (fc fileClient) toDomain() domain.Client {
	accountType, err := domain.ParseAccountType(fc.AccountType)
	if err != nil {
		accountType = domain.AccountType(fc.AccountType)
	}

	// ausente conta como configurado
	dataConfig := true
	if fc.DataConfig != nil {
		dataConfig = *fc.DataConfig
	}

	return domain.Client{
		Name:          fc.Name,
		AccountType:   accountType,
		Dashboard:     fc.Dashboard,
		Budget:        fc.Budget,
		Dimension:     fc.Dimension,
		PlanURL:       fc.Plan,
		ReportDueDay:  fc.ReportDueDay,
		ClientContext: fc.ClientContext,
		DataConfig:    dataConfig,
		Recipients:    fc.Recipients,
	}
}
