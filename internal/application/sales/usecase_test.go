package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/sales"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

const (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"
)

type fixture struct {
	uc       *sales.SaleUseCase
	products *memory.ProductRepo
	product  *entity.Product
}

func newFixture(t *testing.T, stock int64) fixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	p := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyA,
		SKU:         "FRE-BRE-F15-0042",
		ProductCode: "DEADBEEF",
		Name:        "Pastillas de freno",
		Category:    "Frenos",
		Brand:       "BREMBO",
		Model:       "F150",
		Price:       decimal.NewFromInt(10000),
		Stock:       stock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, products.Create(context.Background(), p))
	uc := sales.NewSaleUseCase(memory.NewTxRunner(store), memory.NewSaleRepository(store))
	return fixture{uc: uc, products: products, product: p}
}

func (f fixture) stock(t *testing.T) int64 {
	t.Helper()
	p, err := f.products.GetByID(context.Background(), f.product.ID)
	require.NoError(t, err)
	return p.Stock
}

func TestRegisterSale_ConDescuento(t *testing.T) {
	f := newFixture(t, 10)

	out, err := f.uc.Register(context.Background(), companyA, dto.RegisterSaleRequest{
		ProductID:       f.product.ID,
		Quantity:        3,
		DiscountPercent: decimal.NewFromInt(10),
		DiscountAmount:  decimal.NewFromInt(500),
		CustomerName:    "  Juan Pérez ",
	})
	require.NoError(t, err)

	assert.Equal(t, "FRE-BRE-F15-0042", out.SKU)
	assert.True(t, decimal.NewFromInt(10000).Equal(out.UnitPrice))
	assert.True(t, decimal.NewFromInt(30000).Equal(out.Subtotal))
	assert.True(t, decimal.NewFromInt(26500).Equal(out.Total), "30000 - 10%% - 500 = 26500, obtuvo %s", out.Total)
	assert.Equal(t, "Juan Pérez", out.CustomerName)
	assert.Equal(t, int64(7), f.stock(t))

	got, err := f.uc.GetByID(context.Background(), companyA, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}

func TestRegisterSale_PrecioManualYFecha(t *testing.T) {
	f := newFixture(t, 5)
	price := decimal.RequireFromString("9500.50")
	soldAt := time.Date(2026, 1, 4, 10, 30, 0, 0, time.UTC)

	out, err := f.uc.Register(context.Background(), companyA, dto.RegisterSaleRequest{
		ProductID: f.product.ID,
		Quantity:  2,
		UnitPrice: &price,
		SoldAt:    &soldAt,
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("19001").Equal(out.Total))
	assert.True(t, soldAt.Equal(out.SoldAt))
}

func TestRegisterSale_StockInsuficienteNoRegistraNada(t *testing.T) {
	f := newFixture(t, 2)

	_, err := f.uc.Register(context.Background(), companyA, dto.RegisterSaleRequest{
		ProductID: f.product.ID,
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), f.stock(t))

	list, err := f.uc.List(context.Background(), companyA, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestRegisterSale_DescuentoInvalidoHaceRollback(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.Register(context.Background(), companyA, dto.RegisterSaleRequest{
		ProductID:      f.product.ID,
		Quantity:       1,
		DiscountAmount: decimal.NewFromInt(20000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), f.stock(t))
}

func TestRegisterSale_Errores(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: "no-uuid", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: f.product.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: uuid.New().String(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Register(ctx, companyB, dto.RegisterSaleRequest{ProductID: f.product.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSales_PorEmpresa(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: f.product.ID, Quantity: 1})
		require.NoError(t, err)
	}

	list, err := f.uc.List(ctx, companyA, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 3, list.Page.Total)
	assert.False(t, list.Items[0].CreatedAt.Before(list.Items[1].CreatedAt))

	other, err := f.uc.List(ctx, companyB, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	_, err = f.uc.GetByID(ctx, companyB, list.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterSale_PorcentajeRedondeadoComoSePersiste(t *testing.T) {
	f := newFixture(t, 10)

	out, err := f.uc.Register(context.Background(), companyA, dto.RegisterSaleRequest{
		ProductID:       f.product.ID,
		Quantity:        1,
		DiscountPercent: decimal.RequireFromString("10.125"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10.13", out.DiscountPercent.StringFixed(2))
	assert.True(t, decimal.NewFromInt(8987).Equal(out.Total), "10000 - 10.13%% = 8987, obtuvo %s", out.Total)

	got, err := f.uc.GetByID(context.Background(), companyA, out.ID)
	require.NoError(t, err)
	assert.True(t, out.DiscountPercent.Equal(got.DiscountPercent))
}

func TestRegisterSale_ContextoCanceladoNoRegistraNada(t *testing.T) {
	f := newFixture(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: f.product.ID, Quantity: 3})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), f.stock(t))

	list, err := f.uc.List(context.Background(), companyA, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

// cancelOnSecondCheck reporta cancelación a partir de la segunda consulta a Err.
type cancelOnSecondCheck struct {
	context.Context
	checks int
}

func (c *cancelOnSecondCheck) Err() error {
	c.checks++
	if c.checks > 1 {
		return context.Canceled
	}
	return nil
}

func TestRegisterSale_CancelacionAntesDelCommitHaceRollback(t *testing.T) {
	f := newFixture(t, 10)
	ctx := &cancelOnSecondCheck{Context: context.Background()}

	_, err := f.uc.Register(ctx, companyA, dto.RegisterSaleRequest{ProductID: f.product.ID, Quantity: 3})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), f.stock(t))

	list, err := f.uc.List(context.Background(), companyA, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Page.Total)
}
