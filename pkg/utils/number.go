package utils

import "github.com/shopspring/decimal"

// RoundForDisplay arredonda um decimal para duas casas e o converte para
// float64. Só a camada de apresentação arredonda; os cálculos e o banco
// mantêm a precisão completa.
func RoundForDisplay(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
