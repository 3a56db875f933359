package planning

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimalInDelta(t *testing.T, expected string, actual decimal.Decimal, delta float64) {
	t.Helper()
	actualFloat, _ := actual.Float64()
	expectedFloat, _ := d(expected).Float64()
	assert.InDelta(t, expectedFloat, actualFloat, delta)
}

func TestEconomicOrderQuantity(t *testing.T) {
	tests := []struct {
		name        string
		demand      string
		orderCost   string
		holdingCost string
		expected    string
	}{
		{
			// sqrt((2 × 50 × 1000) / 10) = sqrt(10000) = 100
			name:        "Lote econômico exato",
			demand:      "1000",
			orderCost:   "50",
			holdingCost: "10",
			expected:    "100",
		},
		{
			// sqrt((2 × 30 × 500) / 4) = sqrt(7500) ≈ 86.6025
			name:        "Lote econômico fracionário",
			demand:      "500",
			orderCost:   "30",
			holdingCost: "4",
			expected:    "86.6025",
		},
		{
			name:        "Demanda zerada",
			demand:      "0",
			orderCost:   "50",
			holdingCost: "10",
			expected:    "0",
		},
		{
			name:        "Custo de manutenção zerado",
			demand:      "1000",
			orderCost:   "50",
			holdingCost: "0",
			expected:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EconomicOrderQuantity(d(tt.demand), d(tt.orderCost), d(tt.holdingCost))
			assertDecimalInDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestTotalInventoryCost(t *testing.T) {
	t.Run("Custo no lote econômico", func(t *testing.T) {
		// LE = 100, CE = (10 × 100)/2 + (50 × 1000)/100 = 500 + 500 = 1000
		result := TotalInventoryCost(d("1000"), d("50"), d("10"), d("100"))
		assertDecimalInDelta(t, "1000", result, 0.001)
	})

	t.Run("Lote omitido usa o lote econômico", func(t *testing.T) {
		result := TotalInventoryCost(d("1000"), d("50"), d("10"), decimal.Zero)
		assertDecimalInDelta(t, "1000", result, 0.001)
	})

	t.Run("Lote fora do ótimo custa mais", func(t *testing.T) {
		// CE = (10 × 200)/2 + (50 × 1000)/200 = 1000 + 250 = 1250
		result := TotalInventoryCost(d("1000"), d("50"), d("10"), d("200"))
		assertDecimalInDelta(t, "1250", result, 0.001)
	})

	t.Run("Parâmetros zerados", func(t *testing.T) {
		result := TotalInventoryCost(decimal.Zero, d("50"), d("10"), d("100"))
		assert.True(t, result.IsZero())
	})
}

func TestEOQ(t *testing.T) {
	result := EOQ(d("1000"), d("50"), d("10"))

	assertDecimalInDelta(t, "100", result.EconomicOrderQuantity, 0.001)
	assertDecimalInDelta(t, "1000", result.TotalInventoryCost, 0.001)
}

func TestCashTurnover(t *testing.T) {
	tests := []struct {
		name      string
		cashCycle string
		expected  string
	}{
		{
			name:      "Ciclo de 40 dias",
			cashCycle: "40",
			expected:  "9",
		},
		{
			name:      "Ciclo de 90 dias",
			cashCycle: "90",
			expected:  "4",
		},
		{
			name:      "Ciclo negativo inverte o sinal do giro",
			cashCycle: "-30",
			expected:  "-12",
		},
		{
			name:      "Ciclo zerado não tem giro definido",
			cashCycle: "0",
			expected:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CashTurnover(d(tt.cashCycle))
			assert.True(t, d(tt.expected).Equal(result),
				"esperado %s, obtido %s", tt.expected, result)
		})
	}
}

func TestProductivity(t *testing.T) {
	t.Run("Cálculo completo", func(t *testing.T) {
		result := Productivity(ProductivityInput{
			QuantityProduced:    d("1000"),
			LaborHours:          d("40"),
			LaborHourCost:       d("25"),
			MachineHours:        d("20"),
			MachineHourCost:     d("50"),
			RawMaterialQuantity: d("500"),
			RawMaterialUnitCost: d("2"),
		})

		// MO = 1000, máquina = 1000, matéria-prima = 1000, total = 3000
		assert.True(t, d("1000").Equal(result.LaborCost))
		assert.True(t, d("1000").Equal(result.MachineCost))
		assert.True(t, d("1000").Equal(result.RawMaterialCost))
		assert.True(t, d("3000").Equal(result.TotalProductionCost))

		// Física = 1000/500 = 2, valor = 1000/3000, unitário = 3000/1000 = 3
		assert.True(t, d("2").Equal(result.PhysicalProductivity))
		assertDecimalInDelta(t, "0.3333", result.ValueProductivity, 0.001)
		assert.True(t, d("3").Equal(result.UnitCost))
	})

	t.Run("Sem quantidade produzida tudo é zerado", func(t *testing.T) {
		result := Productivity(ProductivityInput{
			RawMaterialQuantity: d("500"),
			RawMaterialUnitCost: d("2"),
		})

		assert.True(t, result.PhysicalProductivity.IsZero())
		assert.True(t, result.TotalProductionCost.IsZero())
	})

	t.Run("Custos zerados não definem produtividade em valor", func(t *testing.T) {
		result := Productivity(ProductivityInput{
			QuantityProduced:    d("100"),
			RawMaterialQuantity: d("50"),
		})

		assert.True(t, d("2").Equal(result.PhysicalProductivity))
		assert.True(t, result.ValueProductivity.IsZero())
		assert.True(t, result.UnitCost.IsZero())
	})
}
