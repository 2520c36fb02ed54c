package dto

// CategoryStats acumulado de una categoría en el reporte de stock.
type CategoryStats struct {
	ProductCount  int `json:"productCount"`
	TotalQuantity int `json:"totalQuantity"`
}

// ReportProduct producto activo anotado con su movimiento más reciente.
type ReportProduct struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category,omitempty"`
	Quantity     int               `json:"quantity"`
	Status       string            `json:"status"`
	LastMovement *MovementResponse `json:"lastMovement,omitempty"`
}

// StockReport reporte agregado sobre los productos activos.
type StockReport struct {
	TotalProducts   int                      `json:"totalProducts"`
	TotalItems      int                      `json:"totalItems"`
	LowStockCount   int                      `json:"lowStockCount"`
	StatsByCategory map[string]CategoryStats `json:"statsByCategory"`
	Products        []ReportProduct          `json:"products"`
}
