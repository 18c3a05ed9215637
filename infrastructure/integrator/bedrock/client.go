package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-report/internal/config"
)

// InvokeModelAPI é o subconjunto do cliente do Bedrock usado pelo comentador
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// LoadAWSConfig carrega a configuração da AWS. Chaves estáticas têm prioridade sobre a cadeia padrão.
func LoadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Bedrock.Region),
	}
	if cfg.Bedrock.AccessKeyID != "" && cfg.Bedrock.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Bedrock.AccessKeyID, cfg.Bedrock.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "bedrock: falha ao carregar configuração da AWS")
	}
	return awsCfg, nil
}

// NewRuntimeClient cria o cliente do Bedrock Runtime
func NewRuntimeClient(awsCfg aws.Config) *bedrockruntime.Client {
	return bedrockruntime.NewFromConfig(awsCfg)
}
