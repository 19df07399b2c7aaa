package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hardwarestore/internal/domain"
	"hardwarestore/internal/report"
	"hardwarestore/internal/repository"
	"hardwarestore/internal/service"
)

// App wires the in-memory store, services and the text renderer.
type App struct {
	Inventory *service.InventoryService
	Sales     *service.SaleService

	report *report.Renderer
	log    logrus.FieldLogger
}

func New(wholesaleRate decimal.Decimal, out io.Writer, log logrus.FieldLogger) *App {
	store := repository.NewMemoryStore()
	customers := repository.NewMemoryCustomers(store)
	sales := repository.NewMemorySales(store)
	tx := repository.NewMemoryTx(store)

	inventory := service.NewInventoryService(store, customers, log)
	return &App{
		Inventory: inventory,
		Sales:     service.NewSaleService(inventory, sales, tx, wholesaleRate, log),
		report:    report.NewRenderer(out),
		log:       log,
	}
}

func catalog() []*domain.Product {
	price := decimal.RequireFromString
	return []*domain.Product{
		domain.NewTool("H01", "Drill", "Hammer drill 650W", price("350.99"), 10,
			domain.Tool{Type: "Electric", Brand: "Black & Decker", Powered: true}),
		domain.NewTool("H02", "Hammer", "Claw hammer 16oz", price("25.50"), 30,
			domain.Tool{Type: "Manual", Brand: "Stanley", Powered: false}),
		domain.NewMaterial("M01", "Cement", "Grey cement 50kg", price("120.00"), 50,
			domain.Material{Unit: "Bag", Category: "Construction"}),
		domain.NewMaterial("M02", "Nails", "Steel nails 2.5in", price("5.75"), 200,
			domain.Material{Unit: "Kilogram", Category: "Hardware"}),
	}
}

func customers() []*domain.Customer {
	return []*domain.Customer{
		{ID: "C001", Name: "Construcciones SA", Address: "Av. Principal 123", Phone: "5551234", Wholesale: true},
		{ID: "C002", Name: "Juan Pérez", Address: "Calle Secundaria 456", Phone: "5555678", Wholesale: false},
	}
}

// Seed registers the sample tools, materials and customers.
func (a *App) Seed(ctx context.Context) error {
	for _, p := range catalog() {
		if err := a.Inventory.AddProduct(ctx, p); err != nil {
			return err
		}
	}
	for _, c := range customers() {
		if err := a.Inventory.AddCustomer(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// RunDemo seeds the store, prints the opening listings, sells H02 x2 and
// M02 x5 to C002, then prints the invoice, final inventory and history.
func (a *App) RunDemo(ctx context.Context, date string) error {
	if err := a.Seed(ctx); err != nil {
		return errors.Wrap(err, "seed")
	}
	if err := a.printInventory(ctx); err != nil {
		return err
	}
	if err := a.printCustomers(ctx); err != nil {
		return err
	}

	sale, err := a.Sales.OpenSale(ctx, "V001", "C002", date)
	if err != nil {
		return err
	}
	for _, l := range []service.SaleLine{{ProductCode: "H02", Quantity: 2}, {ProductCode: "M02", Quantity: 5}} {
		added, err := a.Sales.AddItem(ctx, sale, l.ProductCode, l.Quantity)
		if err != nil {
			return err
		}
		if !added {
			a.log.WithField("product", l.ProductCode).Warn("not enough stock, item skipped")
		}
	}
	if err := a.Sales.RecordSale(ctx, sale); err != nil {
		return err
	}

	if err := a.report.SaleDetail(sale); err != nil {
		return err
	}
	if err := a.printInventory(ctx); err != nil {
		return err
	}
	return a.printSales(ctx)
}

func (a *App) printInventory(ctx context.Context) error {
	products, err := a.Inventory.Products(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	return a.report.Inventory(products)
}

func (a *App) printCustomers(ctx context.Context) error {
	list, err := a.Inventory.Customers(ctx)
	if err != nil {
		return err
	}
	return a.report.Customers(list)
}

func (a *App) printSales(ctx context.Context) error {
	list, err := a.Sales.Sales(ctx)
	if err != nil {
		return err
	}
	return a.report.Sales(list)
}
