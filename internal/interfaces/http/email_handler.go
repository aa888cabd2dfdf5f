package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// EmailHandler trata as requisições HTTP de contas de e-mail (protegido).
type EmailHandler struct {
	uc *usecase.EmailUseCase
}

// NewEmailHandler constrói o handler.
func NewEmailHandler(uc *usecase.EmailUseCase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar conta de e-mail
// @Tags         emails
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmailRequest  true  "Dados da conta; vínculo via asset_id + asset_type"
// @Success      201   {object}  dto.EmailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/emails [post]
func (h *EmailHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmailRequest
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
// @Summary      Listar contas de e-mail
// @Tags         emails
// @Security     Bearer
// @Produce      json
// @Param        vinculo_id        query  string  false  "Filtrar pelo pai (ativo ou celular)"
// @Param        tipo              query  string  false  "google, zimbra ou microsoft"
// @Param        incluir_inativos  query  bool    false  "Incluir contas Inativas"
// @Success      200  {array}  dto.EmailResponse
// @Router       /api/emails [get]
func (h *EmailHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroEmail{
		VinculoID:       c.Query("vinculo_id"),
		Tipo:            c.Query("tipo"),
		IncluirInativos: c.QueryBool("incluir_inativos"),
	}
	out, err := h.uc.List(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter conta por ID (senha só com com_senha=true)
// @Tags         emails
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "ID da conta"
// @Param        com_senha  query  bool    false  "Incluir a senha na resposta"
// @Success      200  {object}  dto.EmailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/emails/{id} [get]
func (h *EmailHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), c.QueryBool("com_senha"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar conta (parcial)
// @Tags         emails
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.UpdateEmailRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.EmailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/emails/{id} [put]
func (h *EmailHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmailRequest
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
// @Summary      Excluir conta (soft por padrão; hard=true exige admin)
// @Tags         emails
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID da conta"
// @Param        hard  query  bool    false  "Remoção física"
// @Success      200   {object}  dto.MsgResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/emails/{id} [delete]
func (h *EmailHandler) Delete(c *fiber.Ctx) error {
	hard := c.QueryBool("hard")
	if err := h.uc.Delete(c.Context(), c.Params("id"), hard, GetAtor(c)); err != nil {
		return responderErro(c, err)
	}
	msg := "Conta desativada com sucesso"
	if hard {
		msg = "Conta excluída permanentemente"
	}
	return c.JSON(dto.MsgResponse{Msg: msg, ID: c.Params("id")})
}
