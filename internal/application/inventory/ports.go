package inventory

import (
	"context"

	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReportPDFGenerator renderiza el reporte de stock como PDF.
type ReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, report *dto.StockReport) ([]byte, error)
}
