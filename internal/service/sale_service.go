package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hardwarestore/internal/domain"
	"hardwarestore/internal/repository"
)

// SaleLine is one requested (product code, quantity) pair for Checkout.
type SaleLine struct {
	ProductCode string `json:"product_code"`
	Quantity    int64  `json:"quantity"`
}

// SaleService реализует логику продаж: открытие, добавление позиций, запись в историю
type SaleService struct {
	inventory     *InventoryService
	sales         repository.SaleRepository
	tx            repository.TxManager
	wholesaleRate decimal.Decimal
	log           logrus.FieldLogger
}

func NewSaleService(inventory *InventoryService, sales repository.SaleRepository, tx repository.TxManager, wholesaleRate decimal.Decimal, log logrus.FieldLogger) *SaleService {
	return &SaleService{inventory: inventory, sales: sales, tx: tx, wholesaleRate: wholesaleRate, log: log}
}

// OpenSale starts a sale for a registered customer. An unknown customer is
// an error; no sale exists without one.
func (s *SaleService) OpenSale(ctx context.Context, code, customerID, date string) (*domain.Sale, error) {
	c, err := s.inventory.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrapf(err, "open sale %s", code)
	}
	sale, err := domain.NewSale(code, c, date, s.wholesaleRate)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// AddItem adds q units of the product with the given code. An unknown code is
// an error; a stock shortage is not, it only yields false.
func (s *SaleService) AddItem(ctx context.Context, sale *domain.Sale, productCode string, q int64) (bool, error) {
	if sale == nil {
		return false, ErrInvalidInput
	}
	p, err := s.inventory.FindProduct(ctx, productCode)
	if err != nil {
		return false, err
	}
	added, err := sale.AddItem(p, q)
	if err != nil {
		return false, errors.Wrapf(err, "sale %s item %s", sale.Code, productCode)
	}
	s.log.WithFields(logrus.Fields{
		"sale":     sale.Code,
		"product":  productCode,
		"quantity": q,
		"added":    added,
	}).Debug("sale item")
	return added, nil
}

// RecordSale appends the sale to the history. It must not be modified after.
func (s *SaleService) RecordSale(ctx context.Context, sale *domain.Sale) error {
	if sale == nil {
		return ErrInvalidInput
	}
	if err := s.sales.Add(ctx, sale); err != nil {
		return errors.Wrapf(err, "record sale %s", sale.Code)
	}
	sale.MarkRecorded()
	s.log.WithFields(logrus.Fields{
		"sale":     sale.Code,
		"customer": sale.Customer.ID,
		"items":    len(sale.Items()),
		"total":    sale.Total().StringFixed(2),
	}).Info("sale recorded")
	return nil
}

// Checkout opens, fills and records a sale in one transaction. Lines that
// hit a stock shortage are skipped the same way AddItem skips them.
func (s *SaleService) Checkout(ctx context.Context, code, customerID, date string, lines []SaleLine) (*domain.Sale, error) {
	if len(lines) == 0 {
		return nil, ErrInvalidInput
	}
	var created *domain.Sale
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// reject unknown codes before any stock moves
		for _, l := range lines {
			if _, err := s.inventory.FindProduct(ctx, l.ProductCode); err != nil {
				return err
			}
			if l.Quantity <= 0 {
				return errors.Wrapf(domain.ErrInvalidQuantity, "product %s", l.ProductCode)
			}
		}
		sale, err := s.OpenSale(ctx, code, customerID, date)
		if err != nil {
			return err
		}
		if _, err := s.sales.FindByCode(ctx, code); err == nil {
			return errors.Wrapf(repository.ErrDuplicate, "record sale %s", code)
		}
		for _, l := range lines {
			if _, err := s.AddItem(ctx, sale, l.ProductCode, l.Quantity); err != nil {
				return err
			}
		}
		if err := s.RecordSale(ctx, sale); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSale возвращает продажу по коду
func (s *SaleService) GetSale(ctx context.Context, code string) (*domain.Sale, error) {
	sale, err := s.sales.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "sale %q", code)
	}
	return sale, nil
}

func (s *SaleService) Sales(ctx context.Context) ([]*domain.Sale, error) {
	return s.sales.List(ctx)
}
