package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository/mocks"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/indicating"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	ledgerRepo   *mocks.MockLedgerRepository
	forecastRepo *mocks.MockForecastRepository
	historyRepo  *mocks.MockIndicatorHistoryRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		ledgerRepo:   mocks.NewMockLedgerRepository(ctrl),
		forecastRepo: mocks.NewMockForecastRepository(ctrl),
		historyRepo:  mocks.NewMockIndicatorHistoryRepository(ctrl),
	}

	service := &Service{
		ledgerRepo:   m.ledgerRepo,
		forecastRepo: m.forecastRepo,
		historyRepo:  m.historyRepo,
	}

	return service, m
}

func ledgerWithData() ([]*domain.PurchaseEntry, []*domain.SaleEntry) {
	purchases := []*domain.PurchaseEntry{
		{
			ID:              1,
			Supplier:        "Fornecedor A",
			Product:         "Produto X",
			Price:           decimal.NewFromInt(100),
			PaymentTermDays: 30,
		},
	}
	sales := []*domain.SaleEntry{
		{
			ID:              1,
			Customer:        "Cliente B",
			Product:         "Produto X",
			Price:           decimal.NewFromInt(200),
			PaymentTermDays: 10,
		},
	}
	return purchases, sales
}

func TestService_SetForecast(t *testing.T) {
	computedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Previsão negativa é rejeitada sem tocar nos repositórios", func(t *testing.T) {
		service, _ := newTestService(t)

		result, err := service.SetForecast(context.Background(), decimal.NewFromInt(-10))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("Previsão com livros preenchidos gera snapshot", func(t *testing.T) {
		service, m := newTestService(t)

		amount := decimal.NewFromInt(900)
		forecast := &domain.ExpenseForecast{Amount: amount, UpdatedAt: computedAt}
		purchases, sales := ledgerWithData()

		m.forecastRepo.EXPECT().Set(amount).Return(forecast, nil)
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(purchases, sales, nil)
		m.historyRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(snapshot *domain.IndicatorSnapshot) (*domain.IndicatorSnapshot, error) {
				assert.Equal(t, computedAt, snapshot.ComputedAt)
				assert.True(t, snapshot.PMRE.Equal(decimal.NewFromInt(30)))
				assert.True(t, snapshot.CashCycle.Equal(decimal.NewFromInt(10)))
				assert.True(t, snapshot.MinimumCashBalance.Equal(decimal.NewFromInt(300)))

				created := *snapshot
				created.ID = 7
				return &created, nil
			})

		result, err := service.setForecastAt(context.Background(), amount, computedAt)

		require.NoError(t, err)
		assert.Equal(t, forecast, result.Forecast)
		require.NotNil(t, result.Snapshot)
		assert.Equal(t, int64(7), result.Snapshot.ID)
	})

	t.Run("Previsão com livros vazios é aceita sem snapshot", func(t *testing.T) {
		service, m := newTestService(t)

		amount := decimal.NewFromInt(900)
		forecast := &domain.ExpenseForecast{Amount: amount, UpdatedAt: computedAt}

		m.forecastRepo.EXPECT().Set(amount).Return(forecast, nil)
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(nil, nil, nil)

		result, err := service.setForecastAt(context.Background(), amount, computedAt)

		require.NoError(t, err)
		assert.Equal(t, forecast, result.Forecast)
		assert.Nil(t, result.Snapshot)
	})
}

func TestService_GetForecast(t *testing.T) {
	t.Run("Previsão nunca definida", func(t *testing.T) {
		service, m := newTestService(t)

		m.forecastRepo.EXPECT().Get().Return(nil, nil)

		forecast, err := service.GetForecast()

		assert.Nil(t, forecast)
		assert.ErrorIs(t, err, ErrForecastNotSet)
	})

	t.Run("Previsão corrente", func(t *testing.T) {
		service, m := newTestService(t)

		expected := &domain.ExpenseForecast{Amount: decimal.NewFromInt(500)}
		m.forecastRepo.EXPECT().Get().Return(expected, nil)

		forecast, err := service.GetForecast()

		require.NoError(t, err)
		assert.Equal(t, expected, forecast)
	})
}

func TestService_CurrentIndicators(t *testing.T) {
	t.Run("Indicadores calculados sobre o snapshot dos livros", func(t *testing.T) {
		service, m := newTestService(t)

		purchases, sales := ledgerWithData()
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(purchases, sales, nil)
		m.forecastRepo.EXPECT().Get().Return(&domain.ExpenseForecast{Amount: decimal.NewFromInt(900)}, nil)

		indicators, err := service.CurrentIndicators(context.Background())

		require.NoError(t, err)
		assert.True(t, indicators.PMRE.Equal(decimal.NewFromInt(30)))
		assert.True(t, indicators.PMRV.Equal(decimal.NewFromInt(10)))
		assert.True(t, indicators.OperatingCycle.Equal(decimal.NewFromInt(40)))
	})

	t.Run("Sem previsão o cálculo não tem dados", func(t *testing.T) {
		service, m := newTestService(t)

		purchases, sales := ledgerWithData()
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(purchases, sales, nil)
		m.forecastRepo.EXPECT().Get().Return(nil, nil)

		indicators, err := service.CurrentIndicators(context.Background())

		assert.Nil(t, indicators)
		assert.ErrorIs(t, err, indicating.ErrNoData)
	})
}

func TestService_RecordSnapshot(t *testing.T) {
	t.Run("Sem dados nada é gravado no histórico", func(t *testing.T) {
		service, m := newTestService(t)

		m.forecastRepo.EXPECT().Get().Return(nil, nil)
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(nil, nil, nil)

		snapshot, err := service.RecordSnapshot(context.Background())

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, indicating.ErrNoData)
	})

	t.Run("Com dados o snapshot é acrescentado ao histórico", func(t *testing.T) {
		service, m := newTestService(t)

		purchases, sales := ledgerWithData()
		m.forecastRepo.EXPECT().Get().Return(&domain.ExpenseForecast{Amount: decimal.NewFromInt(900)}, nil)
		m.ledgerRepo.EXPECT().SnapshotLedgers(gomock.Any()).Return(purchases, sales, nil)
		m.historyRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(snapshot *domain.IndicatorSnapshot) (*domain.IndicatorSnapshot, error) {
				created := *snapshot
				created.ID = 42
				return &created, nil
			})

		snapshot, err := service.RecordSnapshot(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(42), snapshot.ID)
	})
}

func TestService_DeleteSnapshot(t *testing.T) {
	t.Run("Snapshot inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.historyRepo.EXPECT().Delete(int64(99)).Return(repository.ErrNotFound)

		err := service.DeleteSnapshot(99)

		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Snapshot apagado", func(t *testing.T) {
		service, m := newTestService(t)

		m.historyRepo.EXPECT().Delete(int64(7)).Return(nil)

		err := service.DeleteSnapshot(7)

		assert.NoError(t, err)
	})
}
