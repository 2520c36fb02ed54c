package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/usecase"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// UserHandler maneja las peticiones HTTP para User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        skip    query  int     false  "Desplazamiento"  default(0)
// @Param        take    query  int     false  "Tamaño de página"  default(10)
// @Param        role    query  string  false  "Filtrar por rol"
// @Param        active  query  bool    false  "Filtrar por flag activo"
// @Param        search  query  string  false  "Búsqueda en nombre y email"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Take: c.QueryInt("take", 0)}
	page.DefaultPage(10)

	f := repository.UserFilter{
		Role:   c.Query("role"),
		Active: parseBoolQuery(c, "active"),
		Search: c.Query("search"),
		Limit:  page.Take,
		Offset: page.Skip,
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener usuario por ID (incluye historial de movimientos)
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar usuario (merge parcial, re-verifica unicidad de email)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar usuario (borrado lógico si tiene movimientos)
// @Tags         users
// @Param        id  path  string  true  "ID del usuario"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
