package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/usecase"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        skip      query  int     false  "Desplazamiento"  default(0)
// @Param        take      query  int     false  "Tamaño de página"  default(10)
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        status    query  string  false  "Filtrar por estado"
// @Param        active    query  bool    false  "Filtrar por flag activo"
// @Param        search    query  string  false  "Búsqueda en nombre y descripción"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Take: c.QueryInt("take", 0)}
	page.DefaultPage(10)

	f := repository.ProductFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Active:   parseBoolQuery(c, "active"),
		Search:   c.Query("search"),
		Limit:    page.Take,
		Offset:   page.Skip,
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener producto por ID (incluye historial de movimientos)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrProductNotFound)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar producto (merge parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrProductNotFound)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico si tiene movimientos)
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
