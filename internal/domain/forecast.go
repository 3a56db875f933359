package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseForecast é a previsão de gastos corrente. Existe no máximo uma
// instância lógica por vez; cada novo envio substitui a anterior.
type ExpenseForecast struct {
	Amount    decimal.Decimal `json:"previsaoGastos"`
	UpdatedAt time.Time       `json:"atualizadoEm"`
}
