package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// CelularHandler trata as requisições HTTP de celulares corporativos (protegido).
type CelularHandler struct {
	uc *usecase.CelularUseCase
}

// NewCelularHandler constrói o handler.
func NewCelularHandler(uc *usecase.CelularUseCase) *CelularHandler {
	return &CelularHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar celular
// @Tags         celulares
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCelularRequest  true  "Dados do celular"
// @Success      201   {object}  dto.CelularResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/celulares [post]
func (h *CelularHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCelularRequest
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
// @Summary      Listar celulares
// @Tags         celulares
// @Security     Bearer
// @Produce      json
// @Param        filial            query  string  false  "Filtrar por filial"
// @Param        status            query  string  false  "Filtrar por status"
// @Param        incluir_inativos  query  bool    false  "Incluir registros Inativos"
// @Success      200  {array}  dto.CelularResponse
// @Router       /api/celulares [get]
func (h *CelularHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroPatrimonio{
		Filial:          c.Query("filial"),
		Status:          c.Query("status"),
		IncluirInativos: c.QueryBool("incluir_inativos"),
	}
	out, err := h.uc.List(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter celular por ID
// @Tags         celulares
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do celular"
// @Success      200  {object}  dto.CelularResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/celulares/{id} [get]
func (h *CelularHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar celular (parcial)
// @Tags         celulares
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do celular"
// @Param        body  body  dto.UpdateCelularRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CelularResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/celulares/{id} [put]
func (h *CelularHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCelularRequest
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
// @Summary      Excluir celular (soft por padrão; hard=true exige admin)
// @Tags         celulares
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID do celular"
// @Param        hard  query  bool    false  "Remoção física"
// @Success      200   {object}  dto.MsgResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/celulares/{id} [delete]
func (h *CelularHandler) Delete(c *fiber.Ctx) error {
	hard := c.QueryBool("hard")
	if err := h.uc.Delete(c.Context(), c.Params("id"), hard, GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	msg := "Celular desativado com sucesso"
	if hard {
		msg = "Celular excluído permanentemente"
	}
	return c.JSON(dto.MsgResponse{Msg: msg, ID: c.Params("id")})
}
