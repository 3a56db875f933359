package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEntry representa uma venda registrada pelo operador.
// Mesmo ciclo de vida de PurchaseEntry: criada, listada e apagada por ID.
type SaleEntry struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"dataVenda"`
	Customer        string          `json:"cliente"`
	Product         string          `json:"produto"`
	Price           decimal.Decimal `json:"precoVenda"`
	PaymentTermDays int             `json:"prazoPagto"`
	CreatedAt       time.Time       `json:"-"`
}
