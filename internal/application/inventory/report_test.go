package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/testutil"
)

func newReportFixture(pdf *testutil.PDFStub) (*inventory.StockReportUseCase, *testutil.Store) {
	store := testutil.NewStore()
	return inventory.NewStockReportUseCase(store.Products(), store.Movements(), pdf), store
}

func seedReportProduct(store *testutil.Store, id, name, category string, qty int, active bool) {
	store.SeedProduct(&entity.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Quantity: qty,
		Status:   entity.ProductStatusActive,
		Active:   active,
	})
}

// TestBuildStockReport_Agregados: tres productos activos con cantidades 5, 20
// y 3 (el último sin categoría) producen totalItems=28 y lowStockCount=2
// (cantidades 5 y 3 están por debajo del umbral de 10).
func TestBuildStockReport_Agregados(t *testing.T) {
	uc, store := newReportFixture(&testutil.PDFStub{})
	seedReportProduct(store, "p1", "Alicate", "A", 5, true)
	seedReportProduct(store, "p2", "Broca", "A", 20, true)
	seedReportProduct(store, "p3", "Cinta", "", 3, true)

	report, err := uc.BuildStockReport()
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalProducts)
	assert.Equal(t, 28, report.TotalItems)
	assert.Equal(t, 2, report.LowStockCount)

	require.Len(t, report.StatsByCategory, 2)
	assert.Equal(t, 2, report.StatsByCategory["A"].ProductCount)
	assert.Equal(t, 25, report.StatsByCategory["A"].TotalQuantity)
	// Los productos sin categoría se agrupan bajo la clave centinela.
	assert.Equal(t, 1, report.StatsByCategory["uncategorized"].ProductCount)
	assert.Equal(t, 3, report.StatsByCategory["uncategorized"].TotalQuantity)
}

// TestBuildStockReport_ExcluyeInactivos verifica que los productos con
// active=false (borrado lógico) no cuentan en ningún agregado.
func TestBuildStockReport_ExcluyeInactivos(t *testing.T) {
	uc, store := newReportFixture(&testutil.PDFStub{})
	seedReportProduct(store, "p1", "Alicate", "A", 5, true)
	seedReportProduct(store, "p2", "Broca", "A", 100, false)

	report, err := uc.BuildStockReport()
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalProducts)
	assert.Equal(t, 5, report.TotalItems)
	assert.Equal(t, 1, report.StatsByCategory["A"].ProductCount)
}

// TestBuildStockReport_LimiteDeStockBajo: el umbral es estrictamente menor
// que 10, así que un producto con exactamente 10 no cuenta como stock bajo.
func TestBuildStockReport_LimiteDeStockBajo(t *testing.T) {
	uc, store := newReportFixture(&testutil.PDFStub{})
	seedReportProduct(store, "p1", "Alicate", "A", 10, true)
	seedReportProduct(store, "p2", "Broca", "A", 9, true)

	report, err := uc.BuildStockReport()
	require.NoError(t, err)

	assert.Equal(t, 1, report.LowStockCount)
}

// TestBuildStockReport_UltimoMovimiento verifica que cada producto se anota
// con su movimiento más reciente (y solo con ese).
func TestBuildStockReport_UltimoMovimiento(t *testing.T) {
	uc, store := newReportFixture(&testutil.PDFStub{})
	seedReportProduct(store, "p1", "Alicate", "A", 5, true)
	seedReportProduct(store, "p2", "Broca", "A", 20, true)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.SeedMovement(&entity.StockMovement{
		ID: "m1", ProductID: "p1", UserID: "u1",
		Type: entity.MovementTypeEntry, Quantity: 5, Date: base,
	})
	store.SeedMovement(&entity.StockMovement{
		ID: "m2", ProductID: "p1", UserID: "u1",
		Type: entity.MovementTypeExit, Quantity: 2, Date: base.Add(time.Hour),
	})

	report, err := uc.BuildStockReport()
	require.NoError(t, err)
	require.Len(t, report.Products, 2)

	for _, p := range report.Products {
		switch p.ID {
		case "p1":
			require.NotNil(t, p.LastMovement)
			assert.Equal(t, "m2", p.LastMovement.ID, "debe anotar el movimiento más reciente")
		case "p2":
			assert.Nil(t, p.LastMovement, "producto sin movimientos queda sin anotación")
		}
	}
}

func TestBuildStockReport_SinProductos(t *testing.T) {
	uc, _ := newReportFixture(&testutil.PDFStub{})

	report, err := uc.BuildStockReport()
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalProducts)
	assert.Equal(t, 0, report.TotalItems)
	assert.Empty(t, report.StatsByCategory)
	assert.Empty(t, report.Products)
}

// ── PDF ───────────────────────────────────────────────────────────────────────

func TestBuildStockReportPDF_DelegaEnElGenerador(t *testing.T) {
	pdf := &testutil.PDFStub{Bytes: []byte("%PDF-1.7 stub")}
	uc, store := newReportFixture(pdf)
	seedReportProduct(store, "p1", "Alicate", "A", 5, true)

	out, err := uc.BuildStockReportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, pdf.Bytes, out)
	require.NotNil(t, pdf.LastReport, "el generador debe recibir el reporte construido")
	assert.Equal(t, 1, pdf.LastReport.TotalProducts)
}

func TestBuildStockReportPDF_PropagaErrorDelGenerador(t *testing.T) {
	genErr := errors.New("fuente no disponible")
	uc, _ := newReportFixture(&testutil.PDFStub{Err: genErr})

	_, err := uc.BuildStockReportPDF(context.Background())
	assert.ErrorIs(t, err, genErr)
}
