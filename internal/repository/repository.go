package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"hardwarestore/internal/domain"
)

var (
	// ErrNotFound возвращается, когда сущность не найдена
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a code or id is already registered.
	ErrDuplicate = errors.New("already exists")
)

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	NameSubstring string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
}

// ProductRepository keeps products in registration order. Returned pointers
// refer to the stored product, so selling through them changes stock.
type ProductRepository interface {
	Add(ctx context.Context, p *domain.Product) error
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*domain.Product, error)
}

type CustomerRepository interface {
	Add(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// SaleRepository is the append-only sales history.
type SaleRepository interface {
	Add(ctx context.Context, s *domain.Sale) error
	FindByCode(ctx context.Context, code string) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f ProductFilter) match(p *domain.Product) bool {
	if !containsIgnoreCase(p.Name, f.NameSubstring) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}
