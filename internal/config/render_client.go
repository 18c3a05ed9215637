package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	renderBaseURL  = "https://api.render.com/v1"
	renderPageSize = 100
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SecretStorage lê os secret files de um serviço
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type secretFilePage []struct {
	SecretFile struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListSecrets devolve o conteúdo dos secret files indexado pelo nome, percorrendo todas as páginas
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)
	cursor := ""

	for {
		page, err := c.fetchPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}
		for _, item := range page {
			secrets[item.SecretFile.Name] = item.SecretFile.Content
		}
		if len(page) < renderPageSize {
			break
		}
		cursor = page[len(page)-1].Cursor
		if cursor == "" {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"service_id": serviceID,
		"secrets":    len(secrets),
	}).Debug("Secret files carregados do Render")

	return secrets, nil
}

func (c *RenderClient) fetchPage(ctx context.Context, serviceID, cursor string) (secretFilePage, error) {
	query := url.Values{"limit": {fmt.Sprint(renderPageSize)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "config: error list secrets")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: status %d: %s", resp.StatusCode, body)
	}

	var page secretFilePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Wrap(err, "config: error decode secrets")
	}
	return page, nil
}
