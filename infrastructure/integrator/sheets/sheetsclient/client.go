package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-report/internal/config"
	"golang.org/x/oauth2/google"
)

//go:generate mockgen -source=client.go -destination=../mocks/sheets_client_mock.go -package=mocks

const readOnlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	bareIDPattern        = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	ErrInvalidSpreadsheetURL = errors.New("sheets: url de planilha inválida")
)

type Client interface {
	// GetValues lê os valores formatados de um intervalo A1 (ex: "'Config'")
	GetValues(ctx context.Context, spreadsheetID, rangeA1 string) ([][]string, error)
	// ListSheets lista os títulos das abas na ordem da planilha
	ListSheets(ctx context.Context, spreadsheetID string) ([]string, error)
}

type SheetsClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente autenticado com a conta de serviço do Google
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	credentials, err := cfg.GoogleCredentials()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, readOnlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: credencial da conta de serviço inválida")
	}

	httpClient := jwtConfig.Client(ctx)
	httpClient.Timeout = cfg.Sheets.RequestTimeout
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 30 * time.Second
	}

	return NewClientWithHTTP(httpClient, cfg.Sheets.BaseURL), nil
}

// NewClientWithHTTP cria o cliente sobre um http.Client já autenticado
func NewClientWithHTTP(httpClient *http.Client, baseURL string) *SheetsClient {
	return &SheetsClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// SpreadsheetIDFromURL extrai o id de uma url do Google Sheets. Um id puro é devolvido como está.
func SpreadsheetIDFromURL(raw string) (string, error) {
	if match := spreadsheetIDPattern.FindStringSubmatch(raw); len(match) == 2 {
		return match[1], nil
	}
	if bareIDPattern.MatchString(raw) {
		return raw, nil
	}
	return "", errors.Wrapf(ErrInvalidSpreadsheetURL, "url: %s", raw)
}

// ErrorResponse representa a estrutura de erro da API do Google
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *SheetsClient) do(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sheets: erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "sheets: erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("sheets: %s (%d %s)", apiErr.Error.Message, apiErr.Error.Code, apiErr.Error.Status)
		}
		return fmt.Errorf("sheets: status %d: %s", resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "sheets: erro ao decodificar JSON")
	}
	return nil
}
