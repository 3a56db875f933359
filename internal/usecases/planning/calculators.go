// Package planning reúne os calculadores de apoio ao planejamento: lote
// econômico, custo de estoque, giro de caixa e produtividade. São funções
// puras sobre os parâmetros informados pelo operador; nada é persistido.
package planning

import (
	"math"

	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	two         = decimal.NewFromInt(2)
	daysPerYear = decimal.NewFromInt(360)
)

// EconomicOrderQuantity calcula o lote econômico:
//
//	LE = sqrt((2 × custoPedido × demanda) / custoManutencao)
//
// Qualquer parâmetro menor ou igual a zero torna a fórmula sem sentido e o
// resultado é zero.
func EconomicOrderQuantity(demand, orderCost, holdingCost decimal.Decimal) decimal.Decimal {
	if !demand.IsPositive() || !orderCost.IsPositive() || !holdingCost.IsPositive() {
		return decimal.Zero
	}

	ratio := two.Mul(orderCost).Mul(demand).Div(holdingCost)
	root, _ := ratio.Float64()
	return decimal.NewFromFloat(math.Sqrt(root))
}

// TotalInventoryCost calcula o custo total de estoque:
//
//	CE = (CM × LE)/2 + (CP × D)/LE
//
// Com lot igual a zero o lote econômico é derivado dos demais parâmetros.
func TotalInventoryCost(demand, orderCost, holdingCost, lot decimal.Decimal) decimal.Decimal {
	if !demand.IsPositive() || !orderCost.IsPositive() || !holdingCost.IsPositive() {
		return decimal.Zero
	}

	if !lot.IsPositive() {
		lot = EconomicOrderQuantity(demand, orderCost, holdingCost)
	}
	if !lot.IsPositive() {
		return decimal.Zero
	}

	holdingTotal := holdingCost.Mul(lot).Div(two)
	orderTotal := orderCost.Mul(demand).Div(lot)

	return holdingTotal.Add(orderTotal)
}

// EOQ combina lote econômico e custo total de estoque em um único resultado.
func EOQ(demand, orderCost, holdingCost decimal.Decimal) *domain.EOQResult {
	lot := EconomicOrderQuantity(demand, orderCost, holdingCost)
	return &domain.EOQResult{
		EconomicOrderQuantity: lot,
		TotalInventoryCost:    TotalInventoryCost(demand, orderCost, holdingCost, lot),
	}
}

// CashTurnover calcula o giro de caixa (GC = 360 / ciclo de caixa). Com o
// ciclo zerado não há giro definido e o resultado é zero.
func CashTurnover(cashCycle decimal.Decimal) decimal.Decimal {
	if cashCycle.IsZero() {
		return decimal.Zero
	}
	return daysPerYear.Div(cashCycle)
}

// ProductivityInput são os parâmetros do cálculo de produtividade.
type ProductivityInput struct {
	QuantityProduced    decimal.Decimal
	LaborHours          decimal.Decimal
	LaborHourCost       decimal.Decimal
	MachineHours        decimal.Decimal
	MachineHourCost     decimal.Decimal
	RawMaterialQuantity decimal.Decimal
	RawMaterialUnitCost decimal.Decimal
}

// Productivity calcula os indicadores de produtividade. Sem quantidade
// produzida ou sem matéria-prima o resultado é todo zerado.
func Productivity(in ProductivityInput) *domain.ProductivityResult {
	result := &domain.ProductivityResult{}

	if !in.QuantityProduced.IsPositive() || !in.RawMaterialQuantity.IsPositive() {
		return result
	}

	laborCost := in.LaborHours.Mul(in.LaborHourCost)
	machineCost := in.MachineHours.Mul(in.MachineHourCost)
	rawMaterialCost := in.RawMaterialQuantity.Mul(in.RawMaterialUnitCost)

	totalCost := laborCost.Add(machineCost).Add(rawMaterialCost)

	result.PhysicalProductivity = in.QuantityProduced.Div(in.RawMaterialQuantity)
	result.TotalProductionCost = totalCost
	result.LaborCost = laborCost
	result.MachineCost = machineCost
	result.RawMaterialCost = rawMaterialCost

	if !totalCost.IsZero() {
		result.ValueProductivity = in.QuantityProduced.Div(totalCost)
		result.UnitCost = totalCost.Div(in.QuantityProduced)
	}

	return result
}
