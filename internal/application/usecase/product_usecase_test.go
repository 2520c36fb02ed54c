package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/usecase"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
	"github.com/jhoicas/control-inventario/internal/testutil"
)

func newProductFixture() (*usecase.ProductUseCase, *testutil.Store) {
	store := testutil.NewStore()
	return usecase.NewProductUseCase(store.Products(), store.Movements()), store
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// ── Create ────────────────────────────────────────────────────────────────────

func TestProductCreate(t *testing.T) {
	uc, store := newProductFixture()

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Llave inglesa",
		Category: "Herramientas",
		Quantity: 12,
		Status:   entity.ProductStatusActive,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Active, "todo producto nace activo")
	assert.Equal(t, 12, out.Quantity)
	assert.True(t, store.HasProduct(out.ID))
}

func TestProductCreate_Invalido(t *testing.T) {
	uc, _ := newProductFixture()

	casos := []dto.CreateProductRequest{
		{Name: "", Status: entity.ProductStatusActive},              // sin nombre
		{Name: "X", Status: "BROKEN"},                               // estado desconocido
		{Name: "X", Status: entity.ProductStatusActive, Quantity: -1}, // cantidad negativa
	}
	for _, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ── GetByID ───────────────────────────────────────────────────────────────────

func TestProductGetByID_ConHistorial(t *testing.T) {
	uc, store := newProductFixture()
	store.SeedProduct(&entity.Product{
		ID: "p1", Name: "Martillo", Status: entity.ProductStatusActive, Active: true,
	})
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	store.SeedMovement(&entity.StockMovement{
		ID: "m1", ProductID: "p1", UserID: "u1",
		Type: entity.MovementTypeEntry, Quantity: 3, Date: base,
	})
	store.SeedMovement(&entity.StockMovement{
		ID: "m2", ProductID: "p1", UserID: "u1",
		Type: entity.MovementTypeExit, Quantity: 1, Date: base.Add(time.Hour),
	})

	out, err := uc.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Movements, 2, "el detalle incluye el historial completo")
	assert.Equal(t, "m2", out.Movements[0].ID, "más reciente primero")
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc, _ := newProductFixture()

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestProductUpdate_MergeParcial(t *testing.T) {
	uc, _ := newProductFixture()
	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Martillo", Description: "de carpintero", Quantity: 5,
		Status: entity.ProductStatusActive,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Quantity: intPtr(8),
		Status:   strPtr(entity.ProductStatusUnderMaintenance),
	})
	require.NoError(t, err)

	// Solo cambian los campos enviados.
	assert.Equal(t, 8, out.Quantity)
	assert.Equal(t, entity.ProductStatusUnderMaintenance, out.Status)
	assert.Equal(t, "Martillo", out.Name)
	assert.Equal(t, "de carpintero", out.Description)
}

func TestProductUpdate_Invalido(t *testing.T) {
	uc, _ := newProductFixture()
	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Martillo", Status: entity.ProductStatusActive,
	})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Quantity: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Status: strPtr("BROKEN")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _ := newProductFixture()

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ── Delete: lógico con historial, físico sin él ───────────────────────────────

func TestProductDelete_FisicoSinMovimientos(t *testing.T) {
	uc, store := newProductFixture()
	store.SeedProduct(&entity.Product{
		ID: "p1", Name: "Martillo", Status: entity.ProductStatusActive, Active: true,
	})

	require.NoError(t, uc.Delete("p1"))
	assert.False(t, store.HasProduct("p1"), "sin movimientos la fila se elimina")
}

func TestProductDelete_LogicoConMovimientos(t *testing.T) {
	uc, store := newProductFixture()
	store.SeedProduct(&entity.Product{
		ID: "p1", Name: "Martillo", Status: entity.ProductStatusActive, Active: true,
	})
	store.SeedMovement(&entity.StockMovement{
		ID: "m1", ProductID: "p1", UserID: "u1",
		Type: entity.MovementTypeEntry, Quantity: 1, Date: time.Now(),
	})

	require.NoError(t, uc.Delete("p1"))

	// La fila se conserva desactivada para no romper el historial.
	assert.True(t, store.HasProduct("p1"))
	assert.False(t, store.ProductActive("p1"))
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc, _ := newProductFixture()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrProductNotFound)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestProductList_AnotaMovimientosRecientes(t *testing.T) {
	uc, store := newProductFixture()
	store.SeedProduct(&entity.Product{
		ID: "p1", Name: "Alicate", Status: entity.ProductStatusActive, Active: true,
	})

	// Siete movimientos: el listado anota como máximo los 5 más recientes.
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		store.SeedMovement(&entity.StockMovement{
			ProductID: "p1", UserID: "u1",
			Type: entity.MovementTypeEntry, Quantity: 1,
			Date: base.Add(time.Duration(i) * time.Minute),
		})
	}

	out, err := uc.List(repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Movements, 5)
}

func TestProductList_Filtros(t *testing.T) {
	uc, store := newProductFixture()
	store.SeedProduct(&entity.Product{
		ID: "p1", Name: "Alicate", Category: "A", Status: entity.ProductStatusActive, Active: true,
	})
	store.SeedProduct(&entity.Product{
		ID: "p2", Name: "Broca", Category: "B", Status: entity.ProductStatusActive, Active: false,
	})

	porCategoria, err := uc.List(repository.ProductFilter{Category: "A"})
	require.NoError(t, err)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "p1", porCategoria[0].ID)

	activos, err := uc.List(repository.ProductFilter{Active: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	busqueda, err := uc.List(repository.ProductFilter{Search: "bro"})
	require.NoError(t, err)
	require.Len(t, busqueda, 1)
	assert.Equal(t, "p2", busqueda[0].ID)
}
