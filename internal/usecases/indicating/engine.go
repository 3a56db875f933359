// Package indicating deriva os indicadores do ciclo financeiro a partir do
// livro-razão e da previsão de gastos. Compute é uma função pura dos três
// argumentos: nenhum estado ambiente participa do cálculo, e recalcular sobre
// o mesmo livro-razão produz valores bit a bit idênticos.
package indicating

import (
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrNoData indica que não há dados suficientes para produzir indicadores:
// algum dos livros está vazio ou a previsão de gastos nunca foi definida.
// É um estado esperado, não uma falha do sistema.
var ErrNoData = errors.New("dados insuficientes para calcular os indicadores")

var daysPerMonth = decimal.NewFromInt(30)

// Compute deriva os seis indicadores:
//
//	PMRE  = média simples dos prazos de pagamento das entradas
//	PMRV  = média simples dos prazos de pagamento das vendas
//	PMPF  = média dos prazos das entradas ponderada pelo preço de compra
//	Ciclo operacional = PMRE + PMRV
//	Ciclo de caixa    = ciclo operacional - PMPF (pode ser negativo)
//	Saldo mínimo      = (previsão / 30) × max(ciclo de caixa, 0)
//
// O ciclo de caixa negativo significa que o operador recebe antes de pagar os
// fornecedores; nesse caso não há lacuna de caixa a cobrir e o saldo mínimo é
// zero.
func Compute(
	purchases []*domain.PurchaseEntry,
	sales []*domain.SaleEntry,
	forecast *domain.ExpenseForecast,
) (*domain.Indicators, error) {
	if len(purchases) == 0 || len(sales) == 0 || forecast == nil {
		return nil, ErrNoData
	}

	pmre := meanPurchaseTerm(purchases)
	pmrv := meanSaleTerm(sales)
	pmpf := weightedPurchaseTerm(purchases)

	operatingCycle := pmre.Add(pmrv)
	cashCycle := operatingCycle.Sub(pmpf)

	minimumCashBalance := decimal.Zero
	if cashCycle.IsPositive() {
		minimumCashBalance = forecast.Amount.Div(daysPerMonth).Mul(cashCycle)
	}

	return &domain.Indicators{
		PMRE:               pmre,
		PMRV:               pmrv,
		PMPF:               pmpf,
		OperatingCycle:     operatingCycle,
		CashCycle:          cashCycle,
		MinimumCashBalance: minimumCashBalance,
	}, nil
}

func meanPurchaseTerm(purchases []*domain.PurchaseEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range purchases {
		total = total.Add(decimal.NewFromInt(int64(entry.PaymentTermDays)))
	}
	return total.Div(decimal.NewFromInt(int64(len(purchases))))
}

func meanSaleTerm(sales []*domain.SaleEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range sales {
		total = total.Add(decimal.NewFromInt(int64(entry.PaymentTermDays)))
	}
	return total.Div(decimal.NewFromInt(int64(len(sales))))
}

// weightedPurchaseTerm pondera o prazo de cada entrada pelo preço de compra:
// compras maiores dominam o prazo médio de pagamento a fornecedores. Com todos
// os preços zerados não há peso definido e a média ponderada é zero.
func weightedPurchaseTerm(purchases []*domain.PurchaseEntry) decimal.Decimal {
	weighted := decimal.Zero
	totalPrice := decimal.Zero

	for _, entry := range purchases {
		term := decimal.NewFromInt(int64(entry.PaymentTermDays))
		weighted = weighted.Add(entry.Price.Mul(term))
		totalPrice = totalPrice.Add(entry.Price)
	}

	if totalPrice.IsZero() {
		return decimal.Zero
	}

	return weighted.Div(totalPrice)
}
