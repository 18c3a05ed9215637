package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptyResponse     = errors.New("bedrock: resposta sem texto")
	ErrInvalidCommentary = errors.New("bedrock: comentário fora do formato esperado")
)

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
}

type invokeResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// BedrockCommentator gera o comentário do relatório com um modelo Anthropic no Bedrock
type BedrockCommentator struct {
	api         InvokeModelAPI
	modelID     string
	maxTokens   int
	temperature float64
}

func New(cfg *config.Config, api InvokeModelAPI) *BedrockCommentator {
	maxTokens := cfg.Bedrock.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &BedrockCommentator{
		api:         api,
		modelID:     cfg.Bedrock.ModelID,
		maxTokens:   maxTokens,
		temperature: cfg.Bedrock.Temperature,
	}
}

// Generate envia o payload estruturado e valida o comentário devolvido
func (b *BedrockCommentator) Generate(ctx context.Context, request domain.CommentaryRequest) (*domain.Commentary, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("bedrock: erro ao serializar payload: %w", err)
	}

	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        b.maxTokens,
		System:           systemPrompt,
		Temperature:      b.temperature,
		Messages: []message{
			{Role: "user", Content: []contentBlock{{Type: "text", Text: userPrompt + string(payload)}}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bedrock: erro ao serializar requisição: %w", err)
	}

	output, err := b.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("bedrock: erro na API: %w", err)
	}

	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("bedrock: erro ao decodificar resposta: %w", err)
	}

	var text strings.Builder
	for _, c := range response.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}

	logrus.WithFields(logrus.Fields{
		"model":         b.modelID,
		"input_tokens":  response.Usage.InputTokens,
		"output_tokens": response.Usage.OutputTokens,
		"stop_reason":   response.StopReason,
	}).Debug("bedrock: comentário gerado")

	return ParseCommentary(text.String())
}

// ParseCommentary decodifica o texto do modelo, tolerando um bloco de código em volta do JSON
func ParseCommentary(text string) (*domain.Commentary, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var commentary domain.Commentary
	if err := json.Unmarshal([]byte(raw), &commentary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommentary, err)
	}
	if err := commentary.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommentary, err)
	}
	return &commentary, nil
}

func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}
