package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardwarestore/internal/domain"
)

const demoOutput = `
=== INVENTORY ===
Code: H01, Name: Drill, Price: $350.99, Stock: 10, Type: Electric, Brand: Black & Decker, Powered: Yes
Code: H02, Name: Hammer, Price: $25.50, Stock: 30, Type: Manual, Brand: Stanley, Powered: No
Code: M01, Name: Cement, Price: $120.00, Stock: 50, Unit: Bag, Category: Construction
Code: M02, Name: Nails, Price: $5.75, Stock: 200, Unit: Kilogram, Category: Hardware

=== CUSTOMERS ===
ID: C001, Name: Construcciones SA, Phone: 5551234, Wholesale
ID: C002, Name: Juan Pérez, Phone: 5555678, Retail
=== INVOICE ===
Sale #V001
Customer: Juan Pérez
Date: 2023-10-15

Items:
Hammer x2 - $51.00
Nails x5 - $28.75

TOTAL: $79.75

=== INVENTORY ===
Code: H01, Name: Drill, Price: $350.99, Stock: 10, Type: Electric, Brand: Black & Decker, Powered: Yes
Code: H02, Name: Hammer, Price: $25.50, Stock: 28, Type: Manual, Brand: Stanley, Powered: No
Code: M01, Name: Cement, Price: $120.00, Stock: 50, Unit: Bag, Category: Construction
Code: M02, Name: Nails, Price: $5.75, Stock: 195, Unit: Kilogram, Category: Hardware

=== SALES HISTORY ===
=== INVOICE ===
Sale #V001
Customer: Juan Pérez
Date: 2023-10-15

Items:
Hammer x2 - $51.00
Nails x5 - $28.75

TOTAL: $79.75

`

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunDemo(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	a := New(domain.DefaultWholesaleDiscount, &out, quietLogger())

	require.NoError(t, a.RunDemo(ctx, "2023-10-15"))
	assert.Equal(t, demoOutput, out.String())

	sale, err := a.Sales.GetSale(ctx, "V001")
	require.NoError(t, err)
	assert.Equal(t, "79.75", sale.Total().StringFixed(2))
}

func TestRunDemo_SeedTwiceFails(t *testing.T) {
	ctx := context.Background()
	a := New(domain.DefaultWholesaleDiscount, io.Discard, quietLogger())

	require.NoError(t, a.Seed(ctx))
	assert.Error(t, a.RunDemo(ctx, "2023-10-15"))
}
