package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// AtivoHandler trata as requisições HTTP de estações de trabalho (protegido).
type AtivoHandler struct {
	uc *usecase.AtivoUseCase
}

// NewAtivoHandler constrói o handler.
func NewAtivoHandler(uc *usecase.AtivoUseCase) *AtivoHandler {
	return &AtivoHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar ativo
// @Tags         ativos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAtivoRequest  true  "Dados do ativo"
// @Success      201   {object}  dto.AtivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ativos [post]
func (h *AtivoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAtivoRequest
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
// @Summary      Listar ativos
// @Tags         ativos
// @Security     Bearer
// @Produce      json
// @Param        filial            query  string  false  "Filtrar por filial"
// @Param        status            query  string  false  "Filtrar por status"
// @Param        incluir_inativos  query  bool    false  "Incluir registros Inativos"
// @Success      200  {array}  dto.AtivoResponse
// @Router       /api/ativos [get]
func (h *AtivoHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obter ativo por ID
// @Tags         ativos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do ativo"
// @Success      200  {object}  dto.AtivoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ativos/{id} [get]
func (h *AtivoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar ativo (parcial)
// @Tags         ativos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ativo"
// @Param        body  body  dto.UpdateAtivoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.AtivoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ativos/{id} [put]
func (h *AtivoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAtivoRequest
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
// @Summary      Excluir ativo (soft por padrão; hard=true exige admin)
// @Tags         ativos
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID do ativo"
// @Param        hard  query  bool    false  "Remoção física"
// @Success      200   {object}  dto.MsgResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ativos/{id} [delete]
func (h *AtivoHandler) Delete(c *fiber.Ctx) error {
	hard := c.QueryBool("hard")
	if err := h.uc.Delete(c.Context(), c.Params("id"), hard, GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	msg := "Ativo desativado com sucesso"
	if hard {
		msg = "Ativo excluído permanentemente"
	}
	return c.JSON(dto.MsgResponse{Msg: msg, ID: c.Params("id")})
}
