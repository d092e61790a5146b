package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse agregados del dashboard. TotalValueLabel es el valor
// formateado con la moneda configurada en Settings.
type DashboardStatsResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalStock      int             `json:"totalStock"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	TotalValueLabel string          `json:"totalValueLabel"`
	LowStock        int             `json:"lowStock"`
}
