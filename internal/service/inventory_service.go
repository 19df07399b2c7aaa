package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hardwarestore/internal/domain"
	"hardwarestore/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// InventoryService инкапсулирует бизнес-логику вокруг товаров и клиентов
type InventoryService struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	log       logrus.FieldLogger
}

func NewInventoryService(products repository.ProductRepository, customers repository.CustomerRepository, log logrus.FieldLogger) *InventoryService {
	return &InventoryService{products: products, customers: customers, log: log}
}

func (s *InventoryService) AddProduct(ctx context.Context, p *domain.Product) error {
	if p == nil || p.Code == "" || p.Name == "" || p.Kind == nil || p.Price.IsNegative() || p.Stock < 0 {
		return ErrInvalidInput
	}
	if err := s.products.Add(ctx, p); err != nil {
		return errors.Wrapf(err, "add product %s", p.Code)
	}
	s.log.WithFields(logrus.Fields{"code": p.Code, "stock": p.Stock}).Debug("product registered")
	return nil
}

func (s *InventoryService) AddCustomer(ctx context.Context, c *domain.Customer) error {
	if c == nil || c.ID == "" || c.Name == "" {
		return ErrInvalidInput
	}
	if err := s.customers.Add(ctx, c); err != nil {
		return errors.Wrapf(err, "add customer %s", c.ID)
	}
	s.log.WithFields(logrus.Fields{"id": c.ID, "tier": c.Tier()}).Debug("customer registered")
	return nil
}

// FindProduct returns repository.ErrNotFound (wrapped) on a miss.
func (s *InventoryService) FindProduct(ctx context.Context, code string) (*domain.Product, error) {
	p, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "product %q", code)
	}
	return p, nil
}

// FindCustomer returns repository.ErrNotFound (wrapped) on a miss.
func (s *InventoryService) FindCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "customer %q", id)
	}
	return c, nil
}

func (s *InventoryService) UpdatePrice(ctx context.Context, code string, price decimal.Decimal) (*domain.Product, error) {
	p, err := s.FindProduct(ctx, code)
	if err != nil {
		return nil, err
	}
	old := p.Price
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"code": code, "old": old.String(), "new": price.String()}).Info("price changed")
	return p, nil
}

func (s *InventoryService) SetStock(ctx context.Context, code string, stock int64) (*domain.Product, error) {
	p, err := s.FindProduct(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"code": code, "stock": stock}).Info("stock set")
	return p, nil
}

func (s *InventoryService) Products(ctx context.Context, f repository.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, f)
}

func (s *InventoryService) Customers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}
