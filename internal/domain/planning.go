package domain

import "github.com/shopspring/decimal"

// EOQResult é o resultado do cálculo de lote econômico e custo de estoque.
type EOQResult struct {
	EconomicOrderQuantity decimal.Decimal `json:"loteEconomico"`
	TotalInventoryCost    decimal.Decimal `json:"custoEstoque"`
}

// ProductivityResult agrupa os indicadores de produtividade da produção.
type ProductivityResult struct {
	PhysicalProductivity decimal.Decimal `json:"produtividadeFisica"`
	ValueProductivity    decimal.Decimal `json:"produtividadeValor"`
	TotalProductionCost  decimal.Decimal `json:"custoTotalProducao"`
	UnitCost             decimal.Decimal `json:"custoUnitario"`
	LaborCost            decimal.Decimal `json:"custoTrabalho"`
	MachineCost          decimal.Decimal `json:"custoMaquinas"`
	RawMaterialCost      decimal.Decimal `json:"custoMateriaPrima"`
}
