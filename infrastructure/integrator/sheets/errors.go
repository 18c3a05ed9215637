package sheets

import "errors"

var (
	ErrEmptySheet          = errors.New("sheets: aba sem cabeçalho")
	ErrPlanHeaderNotFound  = errors.New("sheets: cabeçalho de tarefas não encontrado no plano")
	ErrPlanWithoutSheets   = errors.New("sheets: planilha de plano sem abas")
	ErrClientsSheetInvalid = errors.New("sheets: aba de configuração sem clientes")
)
