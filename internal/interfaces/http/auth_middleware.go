package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/pkg/jwt"
)

// Locals key para a identidade do ator no Fiber.
const LocalAtor = "ator"

// AuthMiddleware valida o Bearer Token JWT e coloca o Ator em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalAtor, entity.Ator{
			ID:         id.UserID,
			Nome:       id.Nome,
			Permissoes: id.Permissoes,
		})
		return c.Next()
	}
}

// RequirePermissao exige que o ator autenticado tenha a permissão dada.
// Admin passa em qualquer permissão.
func RequirePermissao(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ator := GetAtor(c)
		if !ator.Tem(perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permissão insuficiente"})
		}
		return c.Next()
	}
}

// GetAtor devolve o Ator do contexto (depois do middleware de auth).
func GetAtor(c *fiber.Ctx) entity.Ator {
	v := c.Locals(LocalAtor)
	if v == nil {
		return entity.Ator{}
	}
	a, _ := v.(entity.Ator)
	return a
}
