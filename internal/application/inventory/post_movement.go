package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// PostMovementUseCase registra movimientos de stock de forma transaccional
// (ENTRY, EXIT, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type PostMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewPostMovementUseCase construye el caso de uso.
func NewPostMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *PostMovementUseCase {
	return &PostMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// PostMovementInput entrada para registrar un movimiento de stock.
// Quantity es siempre positivo; para ADJUSTMENT es la cantidad final absoluta.
type PostMovementInput struct {
	ProductID string
	UserID    string
	Type      string
	Quantity  int
	Reason    string
	Note      string
}

// Post valida la solicitud (primera violación gana), inicia una transacción,
// bloquea la fila del producto, aplica la transición de cantidad según el tipo
// y persiste el movimiento junto con la nueva cantidad. Commit o Rollback.
//
// Transición con cantidad actual q y solicitada n:
//
//	ENTRY      -> q + n
//	EXIT       -> q - n   (requiere q >= n)
//	ADJUSTMENT -> n       (valor absoluto, no delta)
func (uc *PostMovementUseCase) Post(ctx context.Context, input PostMovementInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}

	// Secuencia de validación: producto -> usuario -> cantidad -> stock.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.Active {
		return nil, domain.ErrProductInactive
	}

	user, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active {
		return nil, domain.ErrUserInactive
	}

	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.Type == entity.MovementTypeExit && product.Quantity < input.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	var created *entity.StockMovement

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) y repite la
		// verificación de stock con la cantidad ya bloqueada: dos EXIT
		// concurrentes no pueden pasar ambos el chequeo.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrProductNotFound
		}

		newQuantity := locked.Quantity
		switch input.Type {
		case entity.MovementTypeEntry:
			newQuantity += input.Quantity
		case entity.MovementTypeExit:
			if locked.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newQuantity -= input.Quantity
		case entity.MovementTypeAdjustment:
			newQuantity = input.Quantity
		}

		if err := productRepo.UpdateQuantity(input.ProductID, newQuantity); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			UserID:    input.UserID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Note:      input.Note,
			Date:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
