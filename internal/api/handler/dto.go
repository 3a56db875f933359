package handler

import (
	"time"

	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/gpaizante/gestao-caixa-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DTOs da API. Os valores decimais trafegam com duas casas nas respostas;
// armazenamento e cálculo mantêm a precisão completa.

type purchaseRequest struct {
	Date     string          `json:"dataEntrada"`
	Supplier string          `json:"fornecedor"`
	Product  string          `json:"produto"`
	Price    decimal.Decimal `json:"precoCompra"`
	TermDays int             `json:"prazoPagto"`
}

type purchaseResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"dataEntrada"`
	Supplier string  `json:"fornecedor"`
	Product  string  `json:"produto"`
	Price    float64 `json:"precoCompra"`
	TermDays int     `json:"prazoPagto"`
}

type saleRequest struct {
	Date     string          `json:"dataVenda"`
	Customer string          `json:"cliente"`
	Product  string          `json:"produto"`
	Price    decimal.Decimal `json:"precoVenda"`
	TermDays int             `json:"prazoPagto"`
}

type saleResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"dataVenda"`
	Customer string  `json:"cliente"`
	Product  string  `json:"produto"`
	Price    float64 `json:"precoVenda"`
	TermDays int     `json:"prazoPagto"`
}

type forecastRequest struct {
	Amount decimal.Decimal `json:"previsaoGastos"`
}

type forecastResponse struct {
	Amount    float64   `json:"previsaoGastos"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

type indicatorsResponse struct {
	PMRE               float64 `json:"pmre"`
	PMRV               float64 `json:"pmrv"`
	PMPF               float64 `json:"pmpf"`
	OperatingCycle     float64 `json:"cicloOperacional"`
	CashCycle          float64 `json:"cicloCaixa"`
	MinimumCashBalance float64 `json:"saldoMinimo"`
}

type snapshotResponse struct {
	ID         int64  `json:"id"`
	ComputedAt string `json:"dataCalculo"`
	indicatorsResponse
}

type setForecastResponse struct {
	Forecast forecastResponse  `json:"previsao"`
	Snapshot *snapshotResponse `json:"snapshot,omitempty"`
}

func toPurchaseResponse(entry *domain.PurchaseEntry) purchaseResponse {
	return purchaseResponse{
		ID:       entry.ID,
		Date:     entry.Date.Format(time.DateOnly),
		Supplier: entry.Supplier,
		Product:  entry.Product,
		Price:    utils.RoundForDisplay(entry.Price),
		TermDays: entry.PaymentTermDays,
	}
}

func toSaleResponse(entry *domain.SaleEntry) saleResponse {
	return saleResponse{
		ID:       entry.ID,
		Date:     entry.Date.Format(time.DateOnly),
		Customer: entry.Customer,
		Product:  entry.Product,
		Price:    utils.RoundForDisplay(entry.Price),
		TermDays: entry.PaymentTermDays,
	}
}

func toForecastResponse(forecast *domain.ExpenseForecast) forecastResponse {
	return forecastResponse{
		Amount:    utils.RoundForDisplay(forecast.Amount),
		UpdatedAt: forecast.UpdatedAt,
	}
}

func toIndicatorsResponse(indicators *domain.Indicators) indicatorsResponse {
	return indicatorsResponse{
		PMRE:               utils.RoundForDisplay(indicators.PMRE),
		PMRV:               utils.RoundForDisplay(indicators.PMRV),
		PMPF:               utils.RoundForDisplay(indicators.PMPF),
		OperatingCycle:     utils.RoundForDisplay(indicators.OperatingCycle),
		CashCycle:          utils.RoundForDisplay(indicators.CashCycle),
		MinimumCashBalance: utils.RoundForDisplay(indicators.MinimumCashBalance),
	}
}

func toSnapshotResponse(snapshot *domain.IndicatorSnapshot) snapshotResponse {
	return snapshotResponse{
		ID:                 snapshot.ID,
		ComputedAt:         snapshot.ComputedAt.Format(time.DateOnly),
		indicatorsResponse: toIndicatorsResponse(&snapshot.Indicators),
	}
}
