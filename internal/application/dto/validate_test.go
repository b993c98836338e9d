package dto

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

const validUUID = "6ba7b810-9dad-41d1-80b4-00c04fd430c8"

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, got %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr.Fields
}

func TestCreateSupplierRequest_Validate(t *testing.T) {
	ok := CreateSupplierRequest{Name: "  Acme  ", ContactEmail: "ventas@acme.com"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "Acme", ok.Name)

	bad := CreateSupplierRequest{Name: "   ", ContactEmail: "no-es-email"}
	fields := fieldsOf(t, bad.Validate())
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "email", fields["contact_email"])

	long := CreateSupplierRequest{Name: strings.Repeat("a", 101), ContactEmail: "a@b.co"}
	assert.Equal(t, "max=100", fieldsOf(t, long.Validate())["name"])
}

func TestUpdateSupplierRequest_ValidateOnlyPresent(t *testing.T) {
	require.NoError(t, (&UpdateSupplierRequest{}).Validate())

	empty := ""
	fields := fieldsOf(t, (&UpdateSupplierRequest{Name: &empty}).Validate())
	assert.Equal(t, "required", fields["name"])
	assert.NotContains(t, fields, "contact_email")
}

func TestCreateProductRequest_Validate(t *testing.T) {
	ok := CreateProductRequest{
		Name: "Tornillo", Description: "3/8", Quantity: 0,
		Price: decimal.RequireFromString("0.01"), SupplierID: validUUID,
	}
	require.NoError(t, ok.Validate())

	bad := CreateProductRequest{Name: "", Description: "", Quantity: -1, Price: decimal.Zero, SupplierID: "abc"}
	fields := fieldsOf(t, bad.Validate())
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "required", fields["description"])
	assert.Equal(t, "min=0", fields["quantity"])
	assert.Equal(t, "gt=0", fields["price"])
	assert.Equal(t, "uuid", fields["supplierId"])
}

func TestUpdateProductRequest_Validate(t *testing.T) {
	qty := -2
	price := decimal.NewFromInt(-5)
	fields := fieldsOf(t, (&UpdateProductRequest{Quantity: &qty, Price: &price}).Validate())
	assert.Equal(t, "min=0", fields["quantity"])
	assert.Equal(t, "gt=0", fields["price"])

	zero := 0
	require.NoError(t, (&UpdateProductRequest{Quantity: &zero}).Validate())
}

func TestStockRequests_Validate(t *testing.T) {
	require.NoError(t, (&ChangeStockRequest{Change: -3, Reason: "Venta"}).Validate())

	fields := fieldsOf(t, (&ChangeStockRequest{Change: 1, Reason: strings.Repeat("r", 501)}).Validate())
	assert.Equal(t, "max=500", fields["reason"])

	fields = fieldsOf(t, (&CreateStockLogRequest{ProductID: "x", Reason: " "}).Validate())
	assert.Equal(t, "uuid", fields["productId"])
	assert.Equal(t, "required", fields["reason"])
}

func TestCreateStockLogRequest_ShouldUpdateStock(t *testing.T) {
	assert.True(t, CreateStockLogRequest{}.ShouldUpdateStock())
	no, yes := false, true
	assert.False(t, CreateStockLogRequest{UpdateStock: &no}.ShouldUpdateStock())
	assert.True(t, CreateStockLogRequest{UpdateStock: &yes}.ShouldUpdateStock())
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID(validUUID))
	assert.False(t, IsUUID("123"))
	assert.False(t, IsUUID(""))
}

func TestProductPrice_ValidatedAsStored(t *testing.T) {
	cases := map[string]string{
		"0.001":        "min=0.01",
		"0.004":        "min=0.01",
		"100000000":    "max=99999999.99",
		"99999999.996": "max=99999999.99",
		"-1":           "gt=0",
	}
	for raw, rule := range cases {
		in := CreateProductRequest{Name: "X", Description: "Y", Price: decimal.RequireFromString(raw), SupplierID: validUUID}
		assert.Equal(t, rule, fieldsOf(t, in.Validate())["price"], "price %s", raw)
	}

	for _, raw := range []string{"0.005", "99999999.99"} {
		in := CreateProductRequest{Name: "X", Description: "Y", Price: decimal.RequireFromString(raw), SupplierID: validUUID}
		assert.NoError(t, in.Validate(), "price %s", raw)
	}

	price := decimal.RequireFromString("0.001")
	assert.Equal(t, "min=0.01", fieldsOf(t, (&UpdateProductRequest{Price: &price}).Validate())["price"])
}

func TestProductQuantity_UpperBound(t *testing.T) {
	in := CreateProductRequest{Name: "X", Description: "Y", Quantity: math.MaxInt64, Price: decimal.NewFromInt(1), SupplierID: validUUID}
	assert.Equal(t, "max=2147483647", fieldsOf(t, in.Validate())["quantity"])

	in.Quantity = math.MaxInt32
	assert.NoError(t, in.Validate())

	qty := math.MaxInt32 + 1
	assert.Equal(t, "max=2147483647", fieldsOf(t, (&UpdateProductRequest{Quantity: &qty}).Validate())["quantity"])
}

func TestStockChange_Bounds(t *testing.T) {
	fields := fieldsOf(t, (&ChangeStockRequest{Change: math.MaxInt64, Reason: "x"}).Validate())
	assert.Equal(t, "max=2147483647", fields["change"])

	fields = fieldsOf(t, (&CreateStockLogRequest{ProductID: validUUID, Change: math.MinInt64, Reason: "x"}).Validate())
	assert.Equal(t, "min=-2147483648", fields["change"])

	require.NoError(t, (&ChangeStockRequest{Change: math.MinInt32, Reason: "x"}).Validate())
}
