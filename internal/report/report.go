// Package report renders inventory, customer and sale listings as plain text.
package report

import (
	"fmt"
	"io"

	"hardwarestore/internal/domain"
)

// Renderer writes listings to w. The first write error sticks and is
// returned by every later call.
type Renderer struct {
	w   io.Writer
	err error
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) Inventory(products []*domain.Product) error {
	r.printf("\n=== INVENTORY ===\n")
	for _, p := range products {
		r.printf("%s\n", p)
	}
	return r.err
}

func (r *Renderer) Customers(customers []*domain.Customer) error {
	r.printf("\n=== CUSTOMERS ===\n")
	for _, c := range customers {
		r.printf("%s\n", c)
	}
	return r.err
}

// SaleDetail prints an invoice. Line amounts are undiscounted; only the
// total carries the customer's discount.
func (r *Renderer) SaleDetail(s *domain.Sale) error {
	r.printf("=== INVOICE ===\n")
	r.printf("Sale #%s\n", s.Code)
	r.printf("Customer: %s\n", s.Customer.Name)
	r.printf("Date: %s\n", s.Date)
	r.printf("\nItems:\n")
	for _, it := range s.Items() {
		r.printf("%s x%d - %s\n", it.Name, it.Quantity, domain.FormatMoney(it.Amount()))
	}
	r.printf("\nTOTAL: %s\n", domain.FormatMoney(s.Total()))
	return r.err
}

func (r *Renderer) Sales(sales []*domain.Sale) error {
	r.printf("\n=== SALES HISTORY ===\n")
	for _, s := range sales {
		if err := r.SaleDetail(s); err != nil {
			return err
		}
		r.printf("\n")
	}
	return r.err
}
