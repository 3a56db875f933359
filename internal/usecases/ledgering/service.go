// Package ledgering implementa as operações do livro-razão: registro, listagem
// e remoção de entradas de compra e de vendas, com validação na escrita.
package ledgering

import (
	"strings"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/pkg/errors"
)

type LedgerService interface {
	AddPurchase(entry *domain.PurchaseEntry) (*domain.PurchaseEntry, error)
	ListPurchases() ([]*domain.PurchaseEntry, error)
	DeletePurchase(id int64) error
	AddSale(entry *domain.SaleEntry) (*domain.SaleEntry, error)
	ListSales() ([]*domain.SaleEntry, error)
	DeleteSale(id int64) error
}

type Service struct {
	ledgerRepo repository.LedgerRepository
}

func NewService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) AddPurchase(entry *domain.PurchaseEntry) (*domain.PurchaseEntry, error) {
	if err := validatePurchase(entry); err != nil {
		return nil, err
	}

	created, err := s.ledgerRepo.InsertPurchase(entry)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return created, nil
}

func (s *Service) ListPurchases() ([]*domain.PurchaseEntry, error) {
	entries, err := s.ledgerRepo.ListPurchases()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return entries, nil
}

func (s *Service) DeletePurchase(id int64) error {
	err := s.ledgerRepo.DeletePurchase(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) AddSale(entry *domain.SaleEntry) (*domain.SaleEntry, error) {
	if err := validateSale(entry); err != nil {
		return nil, err
	}

	created, err := s.ledgerRepo.InsertSale(entry)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return created, nil
}

func (s *Service) ListSales() ([]*domain.SaleEntry, error) {
	entries, err := s.ledgerRepo.ListSales()
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return entries, nil
}

func (s *Service) DeleteSale(id int64) error {
	err := s.ledgerRepo.DeleteSale(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return nil
}

func validatePurchase(entry *domain.PurchaseEntry) error {
	if strings.TrimSpace(entry.Supplier) == "" || strings.TrimSpace(entry.Product) == "" {
		return ErrMissingRequiredData
	}
	return validateCommon(entry.Date.IsZero(), entry.Price.IsNegative(), entry.PaymentTermDays)
}

func validateSale(entry *domain.SaleEntry) error {
	if strings.TrimSpace(entry.Customer) == "" || strings.TrimSpace(entry.Product) == "" {
		return ErrMissingRequiredData
	}
	return validateCommon(entry.Date.IsZero(), entry.Price.IsNegative(), entry.PaymentTermDays)
}

func validateCommon(dateMissing bool, negativePrice bool, termDays int) error {
	if dateMissing {
		return ErrMissingDate
	}
	if negativePrice || termDays < 0 {
		return ErrNegativeValue
	}
	return nil
}
