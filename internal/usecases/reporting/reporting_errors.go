package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do motor de relatórios
var (
	// Erros de configuração
	ErrMissingColumn      = errors.New("required column missing")
	ErrMissingDimension   = errors.New("dimension column missing")
	ErrUnknownAccountType = errors.New("unknown account type")

	// Erros de dados insuficientes
	ErrNoEarliestDate     = errors.New("earliest record date unavailable")
	ErrRunRateUnavailable = errors.New("insufficient data for run rate")
)

// ConfigurationError indica que o relatório do cliente não pode ser gerado com a configuração atual
type ConfigurationError struct {
	Err     error  // Erro base
	Column  string // Coluna envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConfigurationError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Column)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError cria um novo ConfigurationError
func NewConfigurationError(err error, column string, details string) *ConfigurationError {
	return &ConfigurationError{
		Err:     err,
		Column:  column,
		Details: details,
	}
}

// InsufficientDataError indica que não há dados suficientes para um cálculo
type InsufficientDataError struct {
	Err     error
	Details string
}

func (e *InsufficientDataError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsufficientDataError) Unwrap() error {
	return e.Err
}

// NewInsufficientDataError cria um novo InsufficientDataError
func NewInsufficientDataError(err error, details string) *InsufficientDataError {
	return &InsufficientDataError{
		Err:     err,
		Details: details,
	}
}

// IsConfigurationError indica se o erro é de configuração
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsInsufficientData indica se o erro é de dados insuficientes
func IsInsufficientData(err error) bool {
	var dataErr *InsufficientDataError
	return errors.As(err, &dataErr)
}
