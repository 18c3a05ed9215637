package domain

// SiteContextRow resume o tráfego do site em um período
type SiteContextRow struct {
	Label              string  `json:"label"`
	Period             Period  `json:"period"`
	Sessions           float64 `json:"sessions"`
	Transactions       float64 `json:"transactions"`
	TransactionRevenue float64 `json:"transaction_revenue"`
	ConversionRate     float64 `json:"conversion_rate"`
	AOV                float64 `json:"aov"`
}

// SiteContext é a série de contexto do site (atual e anterior)
type SiteContext struct {
	Mode ComparisonMode   `json:"mode"`
	Rows []SiteContextRow `json:"rows"`
}
