package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
)

// FilialHandler trata as requisições HTTP de filiais (protegido).
type FilialHandler struct {
	uc *usecase.FilialUseCase
}

// NewFilialHandler constrói o handler.
func NewFilialHandler(uc *usecase.FilialUseCase) *FilialHandler {
	return &FilialHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar filial
// @Tags         filiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFilialRequest  true  "Dados da filial"
// @Success      201   {object}  dto.FilialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/filiais [post]
func (h *FilialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, GetAtor(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar filiais
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FilialResponse
// @Router       /api/filiais [get]
func (h *FilialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar filial (parcial)
// @Tags         filiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da filial"
// @Param        body  body  dto.UpdateFilialRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.FilialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/filiais/{id} [put]
func (h *FilialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetAtor(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir filial (admin; recusa se houver patrimônio vinculado)
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da filial"
// @Success      200  {object}  dto.MsgResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/filiais/{id} [delete]
func (h *FilialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MsgResponse{Msg: "Filial excluída com sucesso", ID: c.Params("id")})
}

// ListResponsaveis godoc
// @Summary      Responsáveis distintos por patrimônio (ativos + celulares)
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        filial  query  string  false  "Limitar a uma filial"
// @Success      200  {array}  string
// @Router       /api/responsaveis [get]
func (h *FilialHandler) ListResponsaveis(c *fiber.Ctx) error {
	out, err := h.uc.ListResponsaveis(c.Context(), c.Query("filial"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
