package indicating

import (
	"testing"

	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(price string, termDays int) *domain.PurchaseEntry {
	return &domain.PurchaseEntry{
		Supplier:        "Fornecedor",
		Product:         "Produto",
		Price:           decimal.RequireFromString(price),
		PaymentTermDays: termDays,
	}
}

func sale(price string, termDays int) *domain.SaleEntry {
	return &domain.SaleEntry{
		Customer:        "Cliente",
		Product:         "Produto",
		Price:           decimal.RequireFromString(price),
		PaymentTermDays: termDays,
	}
}

func forecast(amount string) *domain.ExpenseForecast {
	return &domain.ExpenseForecast{Amount: decimal.RequireFromString(amount)}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		purchases []*domain.PurchaseEntry
		sales     []*domain.SaleEntry
		forecast  *domain.ExpenseForecast
		expected  map[string]string
	}{
		{
			name:      "Uma entrada e uma venda",
			purchases: []*domain.PurchaseEntry{purchase("100", 30)},
			sales:     []*domain.SaleEntry{sale("200", 10)},
			forecast:  forecast("900"),
			expected: map[string]string{
				"pmre":             "30",
				"pmrv":             "10",
				"pmpf":             "30",
				"cicloOperacional": "40",
				"cicloCaixa":       "10",
				"saldoMinimo":      "300",
			},
		},
		{
			name: "PMPF ponderado pelo preço de compra",
			purchases: []*domain.PurchaseEntry{
				purchase("100", 40),
				purchase("300", 10),
			},
			sales:    []*domain.SaleEntry{sale("500", 15)},
			forecast: forecast("600"),
			expected: map[string]string{
				"pmre":             "25",
				"pmrv":             "15",
				"pmpf":             "17.5",
				"cicloOperacional": "40",
				"cicloCaixa":       "22.5",
				"saldoMinimo":      "450",
			},
		},
		{
			name: "Preços de compra zerados anulam o PMPF",
			purchases: []*domain.PurchaseEntry{
				purchase("0", 30),
			},
			sales:    []*domain.SaleEntry{sale("50", 10)},
			forecast: forecast("300"),
			expected: map[string]string{
				"pmre":             "30",
				"pmrv":             "10",
				"pmpf":             "0",
				"cicloOperacional": "40",
				"cicloCaixa":       "40",
				"saldoMinimo":      "400",
			},
		},
		{
			name: "Ciclo de caixa negativo zera o saldo mínimo",
			purchases: []*domain.PurchaseEntry{
				purchase("1", 0),
				purchase("3", 40),
			},
			sales:    []*domain.SaleEntry{sale("10", 5)},
			forecast: forecast("900"),
			expected: map[string]string{
				"pmre":             "20",
				"pmrv":             "5",
				"pmpf":             "30",
				"cicloOperacional": "25",
				"cicloCaixa":       "-5",
				"saldoMinimo":      "0",
			},
		},
		{
			name:      "Prazos zerados produzem indicadores zerados",
			purchases: []*domain.PurchaseEntry{purchase("100", 0)},
			sales:     []*domain.SaleEntry{sale("200", 0)},
			forecast:  forecast("900"),
			expected: map[string]string{
				"pmre":             "0",
				"pmrv":             "0",
				"pmpf":             "0",
				"cicloOperacional": "0",
				"cicloCaixa":       "0",
				"saldoMinimo":      "0",
			},
		},
		{
			name:      "Previsão zerada zera o saldo mínimo",
			purchases: []*domain.PurchaseEntry{purchase("100", 30)},
			sales:     []*domain.SaleEntry{sale("200", 10)},
			forecast:  forecast("0"),
			expected: map[string]string{
				"pmre":             "30",
				"pmrv":             "10",
				"pmpf":             "30",
				"cicloOperacional": "40",
				"cicloCaixa":       "10",
				"saldoMinimo":      "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicators, err := Compute(tt.purchases, tt.sales, tt.forecast)
			require.NoError(t, err)

			actual := map[string]decimal.Decimal{
				"pmre":             indicators.PMRE,
				"pmrv":             indicators.PMRV,
				"pmpf":             indicators.PMPF,
				"cicloOperacional": indicators.OperatingCycle,
				"cicloCaixa":       indicators.CashCycle,
				"saldoMinimo":      indicators.MinimumCashBalance,
			}

			for field, expected := range tt.expected {
				assert.True(
					t,
					decimal.RequireFromString(expected).Equal(actual[field]),
					"%s: esperado %s, obtido %s", field, expected, actual[field],
				)
			}
		})
	}
}

func TestCompute_NoData(t *testing.T) {
	tests := []struct {
		name      string
		purchases []*domain.PurchaseEntry
		sales     []*domain.SaleEntry
		forecast  *domain.ExpenseForecast
	}{
		{
			name:     "Sem entradas",
			sales:    []*domain.SaleEntry{sale("200", 10)},
			forecast: forecast("900"),
		},
		{
			name:      "Sem vendas",
			purchases: []*domain.PurchaseEntry{purchase("100", 30)},
			forecast:  forecast("900"),
		},
		{
			name:      "Sem previsão de gastos",
			purchases: []*domain.PurchaseEntry{purchase("100", 30)},
			sales:     []*domain.SaleEntry{sale("200", 10)},
		},
		{
			name: "Tudo vazio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicators, err := Compute(tt.purchases, tt.sales, tt.forecast)
			assert.Nil(t, indicators)
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestCompute_Identities(t *testing.T) {
	purchases := []*domain.PurchaseEntry{
		purchase("120.50", 28),
		purchase("75.25", 45),
		purchase("310.00", 14),
	}
	sales := []*domain.SaleEntry{
		sale("500.00", 30),
		sale("220.75", 60),
	}

	indicators, err := Compute(purchases, sales, forecast("4500"))
	require.NoError(t, err)

	assert.True(t, indicators.OperatingCycle.Equal(indicators.PMRE.Add(indicators.PMRV)),
		"ciclo operacional deve ser PMRE + PMRV")
	assert.True(t, indicators.CashCycle.Equal(indicators.OperatingCycle.Sub(indicators.PMPF)),
		"ciclo de caixa deve ser ciclo operacional - PMPF")
}

func TestCompute_Idempotence(t *testing.T) {
	purchases := []*domain.PurchaseEntry{
		purchase("99.99", 21),
		purchase("13.37", 7),
	}
	sales := []*domain.SaleEntry{sale("250.00", 33)}

	first, err := Compute(purchases, sales, forecast("1234.56"))
	require.NoError(t, err)

	second, err := Compute(purchases, sales, forecast("1234.56"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
