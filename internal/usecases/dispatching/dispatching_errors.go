package dispatching

import (
	"errors"
	"fmt"
)

var ErrClientNotFound = errors.New("client not found")

// StageError indica o estágio em que o relatório do cliente falhou
type StageError struct {
	Client string
	Stage  string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: estágio %s: %v", e.Client, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(client, stage string, err error) *StageError {
	return &StageError{Client: client, Stage: stage, Err: err}
}

// StageOf devolve o estágio de um StageError, ou vazio
func StageOf(err error) string {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}
