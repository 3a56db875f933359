// Package forecasting orquestra a previsão de gastos, o recálculo dos
// indicadores e a série histórica de snapshots.
package forecasting

import (
	"context"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/indicating"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SetForecastResult é o resultado de um envio de previsão. Snapshot fica nil
// quando os livros ainda não têm dados para calcular indicadores: a previsão é
// aceita mesmo assim, mas nada é acrescentado ao histórico.
type SetForecastResult struct {
	Forecast *domain.ExpenseForecast
	Snapshot *domain.IndicatorSnapshot
}

type ForecastService interface {
	SetForecast(ctx context.Context, amount decimal.Decimal) (*SetForecastResult, error)
	GetForecast() (*domain.ExpenseForecast, error)
	CurrentIndicators(ctx context.Context) (*domain.Indicators, error)
	RecordSnapshot(ctx context.Context) (*domain.IndicatorSnapshot, error)
	ListHistory() ([]*domain.IndicatorSnapshot, error)
	DeleteSnapshot(id int64) error
}

type Service struct {
	ledgerRepo   repository.LedgerRepository
	forecastRepo repository.ForecastRepository
	historyRepo  repository.IndicatorHistoryRepository
}

func NewService(
	ledgerRepo repository.LedgerRepository,
	forecastRepo repository.ForecastRepository,
	historyRepo repository.IndicatorHistoryRepository,
) ForecastService {
	return &Service{
		ledgerRepo:   ledgerRepo,
		forecastRepo: forecastRepo,
		historyRepo:  historyRepo,
	}
}

// SetForecast grava a nova previsão (last write wins), recalcula os
// indicadores sobre um snapshot consistente dos livros e, se o cálculo teve
// dados, acrescenta exatamente um snapshot ao histórico. Um cálculo sem dados
// não produz snapshot.
func (s *Service) SetForecast(ctx context.Context, amount decimal.Decimal) (*SetForecastResult, error) {
	return s.setForecastAt(ctx, amount, time.Now())
}

func (s *Service) setForecastAt(ctx context.Context, amount decimal.Decimal, computedAt time.Time) (*SetForecastResult, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	forecast, err := s.forecastRepo.Set(amount)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	snapshot, err := s.recordSnapshotAt(ctx, forecast, computedAt)
	if err != nil {
		if errors.Is(err, indicating.ErrNoData) {
			logrus.Info("Previsão gravada sem snapshot: livros ainda sem dados suficientes")
			return &SetForecastResult{Forecast: forecast}, nil
		}
		return nil, err
	}

	return &SetForecastResult{Forecast: forecast, Snapshot: snapshot}, nil
}

func (s *Service) GetForecast() (*domain.ExpenseForecast, error) {
	forecast, err := s.forecastRepo.Get()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if forecast == nil {
		return nil, ErrForecastNotSet
	}
	return forecast, nil
}

// CurrentIndicators calcula os indicadores correntes sem tocar no histórico.
func (s *Service) CurrentIndicators(ctx context.Context) (*domain.Indicators, error) {
	purchases, sales, err := s.ledgerRepo.SnapshotLedgers(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	forecast, err := s.forecastRepo.Get()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return indicating.Compute(purchases, sales, forecast)
}

// RecordSnapshot recalcula os indicadores com a previsão corrente e acrescenta
// um snapshot ao histórico. Retorna indicating.ErrNoData sem gravar nada
// quando não há dados suficientes.
func (s *Service) RecordSnapshot(ctx context.Context) (*domain.IndicatorSnapshot, error) {
	forecast, err := s.forecastRepo.Get()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return s.recordSnapshotAt(ctx, forecast, time.Now())
}

func (s *Service) recordSnapshotAt(ctx context.Context, forecast *domain.ExpenseForecast, computedAt time.Time) (*domain.IndicatorSnapshot, error) {
	purchases, sales, err := s.ledgerRepo.SnapshotLedgers(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	indicators, err := indicating.Compute(purchases, sales, forecast)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.historyRepo.Insert(&domain.IndicatorSnapshot{
		ComputedAt: computedAt,
		Indicators: *indicators,
	})
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return snapshot, nil
}

func (s *Service) ListHistory() ([]*domain.IndicatorSnapshot, error) {
	snapshots, err := s.historyRepo.List()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return snapshots, nil
}

func (s *Service) DeleteSnapshot(id int64) error {
	err := s.historyRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSnapshotNotFound
		}
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return nil
}
