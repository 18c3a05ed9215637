package domain

// Client é a configuração de relatório de um cliente
type Client struct {
	Name          string      `json:"name" yaml:"name" validate:"required"`
	AccountType   AccountType `json:"account_type" yaml:"account_type" validate:"required,account_type"`
	Dashboard     string      `json:"dashboard,omitempty" yaml:"dashboard"`
	Budget        string      `json:"budget,omitempty" yaml:"budget"`
	Dimension     string      `json:"dimension,omitempty" yaml:"dimension"`
	PlanURL       string      `json:"plan,omitempty" yaml:"plan"`
	ReportDueDay  string      `json:"report_due_date" yaml:"report_due_date" validate:"required"`
	ClientContext string      `json:"client_context,omitempty" yaml:"client_context"`
	DataConfig    bool        `json:"data_config" yaml:"data_config" validate:"eq=true"`
	Recipients    []string    `json:"recipients,omitempty" yaml:"recipients" validate:"omitempty,dive,email"`
}

// HasPlan indica se o cliente possui planilha de plano configurada
func (c Client) HasPlan() bool {
	return c.PlanURL != ""
}
