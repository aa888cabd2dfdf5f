package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// SoftwareHandler trata as requisições HTTP de licenças de software (protegido).
type SoftwareHandler struct {
	uc *usecase.SoftwareUseCase
}

// NewSoftwareHandler constrói o handler.
func NewSoftwareHandler(uc *usecase.SoftwareUseCase) *SoftwareHandler {
	return &SoftwareHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar licença
// @Tags         softwares
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSoftwareRequest  true  "Dados da licença"
// @Success      201   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/softwares [post]
func (h *SoftwareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSoftwareRequest
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
// @Summary      Listar licenças
// @Tags         softwares
// @Security     Bearer
// @Produce      json
// @Param        asset_id          query  string  false  "Filtrar por ativo dono"
// @Param        incluir_inativos  query  bool    false  "Incluir licenças Inativas"
// @Success      200  {array}  dto.SoftwareResponse
// @Router       /api/softwares [get]
func (h *SoftwareHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroSoftware{
		AssetID:         c.Query("asset_id"),
		IncluirInativos: c.QueryBool("incluir_inativos"),
	}
	out, err := h.uc.List(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListVencendo godoc
// @Summary      Licenças vencendo nos próximos N dias
// @Tags         softwares
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(30)
// @Success      200   {array}  dto.SoftwareResponse
// @Router       /api/softwares/vencendo [get]
func (h *SoftwareHandler) ListVencendo(c *fiber.Ctx) error {
	out, err := h.uc.ListVencendo(c.Context(), c.QueryInt("dias", 30))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter licença por ID
// @Tags         softwares
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da licença"
// @Success      200  {object}  dto.SoftwareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/softwares/{id} [get]
func (h *SoftwareHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar licença (parcial)
// @Tags         softwares
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da licença"
// @Param        body  body  dto.UpdateSoftwareRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.SoftwareResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/softwares/{id} [put]
func (h *SoftwareHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSoftwareRequest
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
// @Summary      Excluir licença (soft por padrão; hard=true exige admin)
// @Tags         softwares
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID da licença"
// @Param        hard  query  bool    false  "Remoção física"
// @Success      200   {object}  dto.MsgResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/softwares/{id} [delete]
func (h *SoftwareHandler) Delete(c *fiber.Ctx) error {
	hard := c.QueryBool("hard")
	if err := h.uc.Delete(c.Context(), c.Params("id"), hard, GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	msg := "Software desativado com sucesso"
	if hard {
		msg = "Software excluído permanentemente"
	}
	return c.JSON(dto.MsgResponse{Msg: msg, ID: c.Params("id")})
}

// VincularLote godoc
// @Summary      Reconciliar o conjunto de softwares de um ativo
// @Tags         softwares
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ativo"
// @Param        body  body  dto.VincularSoftwaresRequest  true  "Nomes desejados"
// @Success      200   {object}  dto.MsgResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ativos/{id}/softwares [put]
func (h *SoftwareHandler) VincularLote(c *fiber.Ctx) error {
	var in dto.VincularSoftwaresRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.VincularLote(c.Context(), c.Params("id"), in.Softwares, GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MsgResponse{Msg: "Softwares atualizados com sucesso", ID: c.Params("id")})
}
