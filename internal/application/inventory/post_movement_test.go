package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de movimientos: transiciones de cantidad, secuencia de
// validación (la primera violación gana) y atomicidad bajo concurrencia.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "7b0d8c1e-5a7f-4b7e-9a0a-111111111111"
	testUserID    = "d4f2a9b3-8c6e-4f1d-b2c5-222222222222"
)

func newPostFixture(t *testing.T, productQty int) (*inventory.PostMovementUseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{
		ID:       testProductID,
		Name:     "Taladro percutor",
		Category: "Herramientas",
		Quantity: productQty,
		Status:   entity.ProductStatusActive,
		Active:   true,
	})
	store.SeedUser(&entity.User{
		ID:     testUserID,
		Name:   "Carlos Mora",
		Email:  "carlos@acme.co",
		Role:   entity.RoleOperator,
		Active: true,
	})
	uc := inventory.NewPostMovementUseCase(testutil.NewTxRunner(store), store.Products(), store.Users())
	return uc, store
}

func postInput(movType string, qty int) inventory.PostMovementInput {
	return inventory.PostMovementInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      movType,
		Quantity:  qty,
		Reason:    "compra",
	}
}

// ── Transiciones de cantidad ──────────────────────────────────────────────────

func TestPost_EntradaSumaAlStock(t *testing.T) {
	uc, store := newPostFixture(t, 50)

	mov, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 10))
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, 60, store.ProductQuantity(testProductID), "ENTRY de 10 sobre 50 debe dejar 60")
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, 10, mov.Quantity)
	assert.NotEmpty(t, mov.ID)
	assert.False(t, mov.Date.IsZero())
}

func TestPost_SalidaRestaDelStock(t *testing.T) {
	uc, store := newPostFixture(t, 50)

	mov, err := uc.Post(context.Background(), postInput(entity.MovementTypeExit, 20))
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, 30, store.ProductQuantity(testProductID), "EXIT de 20 sobre 50 debe dejar 30")
}

func TestPost_AjusteFijaLaCantidadAbsoluta(t *testing.T) {
	uc, store := newPostFixture(t, 50)

	// ADJUSTMENT no es un delta: la cantidad final es exactamente la indicada.
	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeAdjustment, 5))
	require.NoError(t, err)

	assert.Equal(t, 5, store.ProductQuantity(testProductID))
}

func TestPost_SalidaHastaCero(t *testing.T) {
	uc, store := newPostFixture(t, 10)

	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeExit, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, store.ProductQuantity(testProductID), "vaciar el stock exacto es válido")
}

// ── Validación: la primera violación gana ─────────────────────────────────────

func TestPost_TipoInvalido(t *testing.T) {
	uc, _ := newPostFixture(t, 50)

	_, err := uc.Post(context.Background(), postInput("TRANSFER", 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPost_ProductoInexistente(t *testing.T) {
	uc, store := newPostFixture(t, 50)

	in := postInput(entity.MovementTypeEntry, 0) // cantidad también inválida
	in.ProductID = "no-existe"
	_, err := uc.Post(context.Background(), in)

	// El producto se valida antes que la cantidad.
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, store.MovementCount())
}

func TestPost_ProductoInactivo(t *testing.T) {
	uc, store := newPostFixture(t, 50)
	require.NoError(t, store.Products().Deactivate(testProductID))

	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 10))
	assert.ErrorIs(t, err, domain.ErrProductInactive)
}

func TestPost_UsuarioInexistente(t *testing.T) {
	uc, _ := newPostFixture(t, 50)

	in := postInput(entity.MovementTypeEntry, 10)
	in.UserID = "no-existe"
	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPost_UsuarioInactivo(t *testing.T) {
	uc, store := newPostFixture(t, 50)
	require.NoError(t, store.Users().Deactivate(testUserID))

	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 10))
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestPost_CantidadCeroONegativa(t *testing.T) {
	uc, _ := newPostFixture(t, 50)

	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Post(context.Background(), postInput(entity.MovementTypeExit, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPost_SalidaSinStockSuficiente(t *testing.T) {
	uc, store := newPostFixture(t, 50)

	_, err := uc.Post(context.Background(), postInput(entity.MovementTypeExit, 70))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rechazo limpio: ni movimiento persistido ni cantidad alterada.
	assert.Equal(t, 0, store.MovementCount())
	assert.Equal(t, 50, store.ProductQuantity(testProductID))
}

// ── Concurrencia ──────────────────────────────────────────────────────────────

// TestPost_SalidasConcurrentes verifica que dos EXIT simultáneos que compiten
// por el mismo stock no lo dejan negativo: exactamente uno gana, el otro
// recibe ErrInsufficientStock en la re-verificación dentro de la transacción.
func TestPost_SalidasConcurrentes(t *testing.T) {
	uc, store := newPostFixture(t, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Post(context.Background(), postInput(entity.MovementTypeExit, 10))
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una de las dos salidas debe ganar")
	assert.Equal(t, 0, store.ProductQuantity(testProductID))
	assert.Equal(t, 1, store.MovementCount())
}

// TestPost_EntradasConcurrentesSeAcumulan verifica que N entradas concurrentes
// se aplican todas (sin lost updates).
func TestPost_EntradasConcurrentesSeAcumulan(t *testing.T) {
	uc, store := newPostFixture(t, 0)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, store.ProductQuantity(testProductID))
	assert.Equal(t, n, store.MovementCount())
}

// TestPost_FechaDelMovimiento verifica que el movimiento queda fechado en el
// momento del registro.
func TestPost_FechaDelMovimiento(t *testing.T) {
	uc, _ := newPostFixture(t, 50)

	before := time.Now().Add(-time.Second)
	mov, err := uc.Post(context.Background(), postInput(entity.MovementTypeEntry, 1))
	require.NoError(t, err)
	after := time.Now().Add(time.Second)

	assert.True(t, mov.Date.After(before) && mov.Date.Before(after))
}
