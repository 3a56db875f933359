package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEntry representa uma entrada de compra registrada pelo operador.
// Imutável após a criação; só pode ser removida pelo ID.
type PurchaseEntry struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"dataEntrada"`
	Supplier        string          `json:"fornecedor"`
	Product         string          `json:"produto"`
	Price           decimal.Decimal `json:"precoCompra"`
	PaymentTermDays int             `json:"prazoPagto"`
	CreatedAt       time.Time       `json:"-"`
}
