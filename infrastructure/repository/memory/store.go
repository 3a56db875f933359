// Package memory implementa os repositórios em memória, usados nos testes e
// no modo DATABASE_DRIVER=memory para desenvolvimento local.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Store guarda todas as coleções sob um único mutex. Cada operação é atômica
// e SnapshotLedgers devolve as duas coleções do livro-razão como estavam em um
// único instante, o mesmo contrato da transação REPEATABLE READ do Postgres.
type Store struct {
	mu sync.Mutex

	purchases   []*domain.PurchaseEntry
	sales       []*domain.SaleEntry
	forecast    *domain.ExpenseForecast
	snapshots   []*domain.IndicatorSnapshot
	purchaseSeq int64
	saleSeq     int64
	snapshotSeq int64
}

func NewStore() *Store {
	return &Store{
		purchases: make([]*domain.PurchaseEntry, 0),
		sales:     make([]*domain.SaleEntry, 0),
		snapshots: make([]*domain.IndicatorSnapshot, 0),
	}
}

func (s *Store) InsertPurchase(entry *domain.PurchaseEntry) (*domain.PurchaseEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchaseSeq++
	created := *entry
	created.ID = s.purchaseSeq
	created.CreatedAt = time.Now()
	s.purchases = append(s.purchases, &created)

	out := created
	return &out, nil
}

func (s *Store) ListPurchases() ([]*domain.PurchaseEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyPurchases(s.purchases), nil
}

func (s *Store) DeletePurchase(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.purchases {
		if entry.ID == id {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) InsertSale(entry *domain.SaleEntry) (*domain.SaleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saleSeq++
	created := *entry
	created.ID = s.saleSeq
	created.CreatedAt = time.Now()
	s.sales = append(s.sales, &created)

	out := created
	return &out, nil
}

func (s *Store) ListSales() ([]*domain.SaleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copySales(s.sales), nil
}

func (s *Store) DeleteSale(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.sales {
		if entry.ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) SnapshotLedgers(_ context.Context) ([]*domain.PurchaseEntry, []*domain.SaleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyPurchases(s.purchases), copySales(s.sales), nil
}

func (s *Store) Set(amount decimal.Decimal) (*domain.ExpenseForecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forecast = &domain.ExpenseForecast{
		Amount:    amount,
		UpdatedAt: time.Now(),
	}

	out := *s.forecast
	return &out, nil
}

func (s *Store) Get() (*domain.ExpenseForecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forecast == nil {
		return nil, nil
	}

	out := *s.forecast
	return &out, nil
}

func (s *Store) Insert(snapshot *domain.IndicatorSnapshot) (*domain.IndicatorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshotSeq++
	created := *snapshot
	created.ID = s.snapshotSeq
	// No Postgres a coluna data_calculo é DATE; mantém a mesma granularidade
	created.ComputedAt = truncateToDate(snapshot.ComputedAt)
	s.snapshots = append(s.snapshots, &created)

	out := created
	return &out, nil
}

func (s *Store) List() ([]*domain.IndicatorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.IndicatorSnapshot, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		copied := *snapshot
		out = append(out, &copied)
	}

	// Data de cálculo ascendente; ID desempata snapshots do mesmo dia
	sort.Slice(out, func(i, j int) bool {
		if out[i].ComputedAt.Equal(out[j].ComputedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ComputedAt.Before(out[j].ComputedAt)
	})

	return out, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, snapshot := range s.snapshots {
		if snapshot.ID == id {
			s.snapshots = append(s.snapshots[:i], s.snapshots[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func copyPurchases(entries []*domain.PurchaseEntry) []*domain.PurchaseEntry {
	out := make([]*domain.PurchaseEntry, 0, len(entries))
	for _, entry := range entries {
		copied := *entry
		out = append(out, &copied)
	}
	return out
}

func copySales(entries []*domain.SaleEntry) []*domain.SaleEntry {
	out := make([]*domain.SaleEntry, 0, len(entries))
	for _, entry := range entries {
		copied := *entry
		out = append(out, &copied)
	}
	return out
}

var (
	_ repository.LedgerRepository           = (*Store)(nil)
	_ repository.ForecastRepository         = (*Store)(nil)
	_ repository.IndicatorHistoryRepository = (*Store)(nil)
)
