package ledgering

import (
	"testing"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository/mocks"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validPurchase() *domain.PurchaseEntry {
	return &domain.PurchaseEntry{
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Supplier:        "Fornecedor A",
		Product:         "Produto X",
		Price:           decimal.NewFromFloat(150.75),
		PaymentTermDays: 30,
	}
}

func validSale() *domain.SaleEntry {
	return &domain.SaleEntry{
		Date:            time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Customer:        "Cliente B",
		Product:         "Produto X",
		Price:           decimal.NewFromFloat(280.00),
		PaymentTermDays: 15,
	}
}

func TestService_AddPurchase(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(entry *domain.PurchaseEntry)
		expectedErr error
	}{
		{
			name:   "Entrada válida",
			mutate: func(entry *domain.PurchaseEntry) {},
		},
		{
			name:        "Fornecedor em branco",
			mutate:      func(entry *domain.PurchaseEntry) { entry.Supplier = "   " },
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:        "Produto ausente",
			mutate:      func(entry *domain.PurchaseEntry) { entry.Product = "" },
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:        "Data ausente",
			mutate:      func(entry *domain.PurchaseEntry) { entry.Date = time.Time{} },
			expectedErr: ErrMissingDate,
		},
		{
			name:        "Preço negativo",
			mutate:      func(entry *domain.PurchaseEntry) { entry.Price = decimal.NewFromInt(-1) },
			expectedErr: ErrNegativeValue,
		},
		{
			name:        "Prazo negativo",
			mutate:      func(entry *domain.PurchaseEntry) { entry.PaymentTermDays = -5 },
			expectedErr: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockLedgerRepository(ctrl)
			service := NewService(mockRepo)

			entry := validPurchase()
			tt.mutate(entry)

			if tt.expectedErr == nil {
				created := *entry
				created.ID = 1
				mockRepo.EXPECT().InsertPurchase(entry).Return(&created, nil)
			}

			result, err := service.AddPurchase(entry)

			if tt.expectedErr != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), result.ID)
		})
	}
}

func TestService_AddSale(t *testing.T) {
	t.Run("Venda válida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		entry := validSale()
		created := *entry
		created.ID = 3
		mockRepo.EXPECT().InsertSale(entry).Return(&created, nil)

		result, err := service.AddSale(entry)

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.ID)
	})

	t.Run("Cliente em branco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		entry := validSale()
		entry.Customer = ""

		result, err := service.AddSale(entry)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Prazo zero é aceito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		entry := validSale()
		entry.PaymentTermDays = 0

		created := *entry
		created.ID = 4
		mockRepo.EXPECT().InsertSale(entry).Return(&created, nil)

		result, err := service.AddSale(entry)

		require.NoError(t, err)
		assert.Equal(t, 0, result.PaymentTermDays)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("Entrada inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().DeletePurchase(int64(99)).Return(repository.ErrNotFound)

		err := service.DeletePurchase(99)

		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("Venda inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().DeleteSale(int64(99)).Return(repository.ErrNotFound)

		err := service.DeleteSale(99)

		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("Venda apagada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockLedgerRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().DeleteSale(int64(2)).Return(nil)

		err := service.DeleteSale(2)

		assert.NoError(t, err)
	})
}
