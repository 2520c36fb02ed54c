package inventory

import (
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// MovementQueryUseCase consultas de movimientos (solo lectura).
type MovementQueryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// List lista movimientos con filtros, más reciente primero.
func (uc *MovementQueryUseCase) List(f repository.MovementFilter) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return items, nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (uc *MovementQueryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return ToMovementResponse(m), nil
}

// ToMovementResponse convierte la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Note:      m.Note,
		Date:      m.Date,
	}
}
