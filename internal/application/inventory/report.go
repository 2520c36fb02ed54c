package inventory

import (
	"context"

	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// lowStockThreshold umbral fijo de stock bajo (productos con cantidad < 10).
const lowStockThreshold = 10

// uncategorized clave centinela para productos sin categoría.
const uncategorized = "uncategorized"

// StockReportUseCase construye el reporte agregado de stock sobre los
// productos activos, en una sola pasada de lectura.
type StockReportUseCase struct {
	productRepo  repository.ProductRepository
	movRepo      repository.StockMovementRepository
	pdfGenerator ReportPDFGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	pdfGenerator ReportPDFGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		productRepo:  productRepo,
		movRepo:      movRepo,
		pdfGenerator: pdfGenerator,
	}
}

// BuildStockReport agrega totales, conteo de stock bajo y estadísticas por
// categoría, anotando cada producto activo con su movimiento más reciente.
func (uc *StockReportUseCase) BuildStockReport() (*dto.StockReport, error) {
	active := true
	products, err := uc.productRepo.List(repository.ProductFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	latest, err := uc.movRepo.RecentByProducts(ids, 1)
	if err != nil {
		return nil, err
	}

	report := &dto.StockReport{
		TotalProducts:   len(products),
		StatsByCategory: make(map[string]dto.CategoryStats),
		Products:        make([]dto.ReportProduct, 0, len(products)),
	}
	for _, p := range products {
		report.TotalItems += p.Quantity
		if p.Quantity < lowStockThreshold {
			report.LowStockCount++
		}

		category := p.Category
		if category == "" {
			category = uncategorized
		}
		stats := report.StatsByCategory[category]
		stats.ProductCount++
		stats.TotalQuantity += p.Quantity
		report.StatsByCategory[category] = stats

		item := dto.ReportProduct{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Quantity: p.Quantity,
			Status:   p.Status,
		}
		if movs := latest[p.ID]; len(movs) > 0 {
			item.LastMovement = ToMovementResponse(movs[0])
		}
		report.Products = append(report.Products, item)
	}
	return report, nil
}

// BuildStockReportPDF genera el mismo reporte renderizado como PDF.
func (uc *StockReportUseCase) BuildStockReportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.BuildStockReport()
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateStockReportPDF(ctx, report)
}
