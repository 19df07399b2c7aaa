package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNilCustomer     = errors.New("sale requires a customer")
	ErrNilProduct      = errors.New("sale item requires a product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptySaleCode   = errors.New("sale code is empty")
	ErrSaleRecorded    = errors.New("sale already recorded")
)

// DefaultWholesaleDiscount is the fraction taken off for wholesale customers.
var DefaultWholesaleDiscount = decimal.RequireFromString("0.15")

// LineItem позиция в продаже
type LineItem struct {
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
}

// Amount is the undiscounted line amount.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Sale is one transaction for a customer. Items are keyed by product code;
// the total is accumulated as items are added and never recomputed.
type Sale struct {
	Code     string    `json:"code"`
	Customer *Customer `json:"customer"`
	Date     string    `json:"date"`

	discount decimal.Decimal
	items    map[string]LineItem
	order    []string
	total    decimal.Decimal
	recorded bool
}

func NewSale(code string, customer *Customer, date string, wholesaleRate decimal.Decimal) (*Sale, error) {
	if code == "" {
		return nil, ErrEmptySaleCode
	}
	if customer == nil {
		return nil, ErrNilCustomer
	}
	return &Sale{
		Code:     code,
		Customer: customer,
		Date:     date,
		discount: customer.Discount(wholesaleRate),
		items:    make(map[string]LineItem),
		total:    decimal.Zero,
	}, nil
}

// AddItem sells q units of p into the sale. When stock is short nothing
// changes and (false, nil) is returned.
//
// A repeated product replaces the recorded quantity, while the total still
// grows by the new line's discounted amount.
func (s *Sale) AddItem(p *Product, q int64) (bool, error) {
	if s.recorded {
		return false, ErrSaleRecorded
	}
	if p == nil {
		return false, ErrNilProduct
	}
	if q <= 0 {
		return false, ErrInvalidQuantity
	}
	if !p.Sell(q) {
		return false, nil
	}
	if _, seen := s.items[p.Code]; !seen {
		s.order = append(s.order, p.Code)
	}
	line := LineItem{ProductCode: p.Code, Name: p.Name, UnitPrice: p.Price, Quantity: q}
	s.items[p.Code] = line
	s.total = s.total.Add(line.Amount().Mul(decimal.NewFromInt(1).Sub(s.discount)))
	return true, nil
}

// Items returns line items in the order their products were first added.
func (s *Sale) Items() []LineItem {
	out := make([]LineItem, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.items[code])
	}
	return out
}

// Quantity returns the recorded quantity for a product code, or 0.
func (s *Sale) Quantity(code string) int64 {
	return s.items[code].Quantity
}

// MarkRecorded freezes the sale once it is in the history.
func (s *Sale) MarkRecorded() { s.recorded = true }

func (s *Sale) Recorded() bool { return s.recorded }

func (s *Sale) Total() decimal.Decimal { return s.total }

func (s *Sale) Discount() decimal.Decimal { return s.discount }
