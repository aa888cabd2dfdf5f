package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/auth"
	"github.com/refricriltecno/inventario-ti/internal/application/dto"
)

// AuthHandler trata login, registro e administração de usuários.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username e password são requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar usuário (admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter pelo menos 8 caracteres"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUsuarios godoc
// @Summary      Listar usuários (admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *AuthHandler) ListUsuarios(c *fiber.Ctx) error {
	out, err := h.uc.ListUsuarios(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListFuncionarios godoc
// @Summary      Nomes de funcionários, opcionalmente por filial
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        filial  query  string  false  "Limitar a uma filial"
// @Success      200  {array}  string
// @Router       /api/funcionarios [get]
func (h *AuthHandler) ListFuncionarios(c *fiber.Ctx) error {
	out, err := h.uc.ListFuncionarios(c.Context(), c.Query("filial"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// UpdateUsuario godoc
// @Summary      Atualizar usuário (admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *AuthHandler) UpdateUsuario(c *fiber.Ctx) error {
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateUsuario(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// DeleteUsuario godoc
// @Summary      Desativar usuário (admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  dto.MsgResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *AuthHandler) DeleteUsuario(c *fiber.Ctx) error {
	if err := h.uc.DeleteUsuario(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MsgResponse{Msg: "Usuário removido com sucesso", ID: c.Params("id")})
}
