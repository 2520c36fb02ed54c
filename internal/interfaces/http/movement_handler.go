package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock y reportes.
type MovementHandler struct {
	post   *inventory.PostMovementUseCase
	query  *inventory.MovementQueryUseCase
	report *inventory.StockReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	post *inventory.PostMovementUseCase,
	query *inventory.MovementQueryUseCase,
	report *inventory.StockReportUseCase,
) *MovementHandler {
	return &MovementHandler{post: post, query: query, report: report}
}

// Post godoc
// @Summary      Registrar movimiento de stock
// @Description  Valida producto, usuario y cantidad; actualiza la cantidad del
// @Description  producto y crea el movimiento en una sola transacción.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "productId, userId, type (ENTRY|EXIT|ADJUSTMENT), quantity, reason?, note?"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movements [post]
func (h *MovementHandler) Post(c *fiber.Ctx) error {
	var in dto.PostMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	mov, err := h.post.Post(c.Context(), inventory.PostMovementInput{
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Note:      in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(inventory.ToMovementResponse(mov)))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        skip       query  int     false  "Desplazamiento"  default(0)
// @Param        take       query  int     false  "Tamaño de página"  default(20)
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        userId     query  string  false  "Filtrar por usuario"
// @Param        type       query  string  false  "Filtrar por tipo (ENTRY|EXIT|ADJUSTMENT)"
// @Param        dateFrom   query  string  false  "Fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        dateTo     query  string  false  "Fecha final (RFC 3339 o YYYY-MM-DD)"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Take: c.QueryInt("take", 0)}
	page.DefaultPage(20)

	from, err := parseDateQuery(c, "dateFrom")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "dateFrom inválido"})
	}
	to, err := parseDateQuery(c, "dateTo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "dateTo inválido"})
	}

	f := repository.MovementFilter{
		ProductID: c.Query("productId"),
		UserID:    c.Query("userId"),
		Type:      c.Query("type"),
		From:      from,
		To:        to,
		Limit:     page.Take,
		Offset:    page.Skip,
	}
	out, err := h.query.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrMovementNotFound)
	}
	return c.JSON(dto.OK(out))
}

// Report godoc
// @Summary      Reporte de stock
// @Description  Totales, conteo de stock bajo y estadísticas por categoría de
// @Description  los productos activos, cada uno con su último movimiento.
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /movements/report [get]
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	out, err := h.report.BuildStockReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         movements
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /movements/report/pdf [get]
func (h *MovementHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.report.BuildStockReportPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-stock.pdf"`)
	return c.Send(pdf)
}

// parseDateQuery acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
