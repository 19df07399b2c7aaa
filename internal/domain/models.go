package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// ProductKind is the variant part of a product: either Tool or Material.
type ProductKind interface {
	describe() string
}

// Tool is a hand or power tool.
type Tool struct {
	Type    string `json:"type"`
	Brand   string `json:"brand"`
	Powered bool   `json:"powered"`
}

func (t Tool) describe() string {
	return fmt.Sprintf(", Type: %s, Brand: %s, Powered: %s", t.Type, t.Brand, yesNo(t.Powered))
}

// Material is a construction material sold by some unit of measure.
type Material struct {
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

func (m Material) describe() string {
	return fmt.Sprintf(", Unit: %s, Category: %s", m.Unit, m.Category)
}

// Product представляет товар на складе
type Product struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Kind        ProductKind     `json:"kind"`
}

// NewTool builds a product of the Tool variant.
func NewTool(code, name, description string, price decimal.Decimal, stock int64, tool Tool) *Product {
	return &Product{Code: code, Name: name, Description: description, Price: price, Stock: stock, Kind: tool}
}

// NewMaterial builds a product of the Material variant.
func NewMaterial(code, name, description string, price decimal.Decimal, stock int64, material Material) *Product {
	return &Product{Code: code, Name: name, Description: description, Price: price, Stock: stock, Kind: material}
}

// Sell decrements stock by q when enough is on hand. It never leaves stock
// negative and reports whether the units were taken.
func (p *Product) Sell(q int64) bool {
	if q <= 0 || q > p.Stock {
		return false
	}
	p.Stock -= q
	return true
}

func (p *Product) SetPrice(v decimal.Decimal) error {
	if v.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = v
	return nil
}

func (p *Product) SetStock(v int64) error {
	if v < 0 {
		return ErrNegativeStock
	}
	p.Stock = v
	return nil
}

func (p *Product) String() string {
	s := fmt.Sprintf("Code: %s, Name: %s, Price: %s, Stock: %d", p.Code, p.Name, FormatMoney(p.Price), p.Stock)
	if p.Kind != nil {
		s += p.Kind.describe()
	}
	return s
}

// CustomerTier тип ценовой категории клиента
type CustomerTier string

const (
	TierWholesale CustomerTier = "Wholesale"
	TierRetail    CustomerTier = "Retail"
)

// Customer is immutable after construction.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Wholesale bool   `json:"wholesale"`
}

func (c *Customer) Tier() CustomerTier {
	if c.Wholesale {
		return TierWholesale
	}
	return TierRetail
}

// Discount returns the fraction taken off sale lines for this customer given
// the store's wholesale rate.
func (c *Customer) Discount(wholesaleRate decimal.Decimal) decimal.Decimal {
	if c.Wholesale {
		return wholesaleRate
	}
	return decimal.Zero
}

func (c *Customer) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Phone: %s, %s", c.ID, c.Name, c.Phone, c.Tier())
}

// FormatMoney renders an amount with two decimals and a dollar sign.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
