package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Indicators agrupa os seis indicadores do ciclo financeiro. Todos os campos
// são expressos em dias, exceto MinimumCashBalance, que é um valor monetário.
//
// Valem sempre as identidades:
//
//	OperatingCycle = PMRE + PMRV
//	CashCycle      = OperatingCycle - PMPF
type Indicators struct {
	PMRE               decimal.Decimal `json:"pmre"`
	PMRV               decimal.Decimal `json:"pmrv"`
	PMPF               decimal.Decimal `json:"pmpf"`
	OperatingCycle     decimal.Decimal `json:"cicloOperacional"`
	CashCycle          decimal.Decimal `json:"cicloCaixa"`
	MinimumCashBalance decimal.Decimal `json:"saldoMinimo"`
}

// IndicatorSnapshot é um registro imutável do histórico: os indicadores como
// estavam no momento do cálculo. Apagar entradas ou vendas depois não altera
// snapshots já gravados.
type IndicatorSnapshot struct {
	ID         int64     `json:"id"`
	ComputedAt time.Time `json:"dataCalculo"`
	Indicators
}
