package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/usecase"
)

// LogHandler expõe o lado de leitura do trilho de auditoria (protegido).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler constrói o handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Entradas de auditoria, mais recentes primeiro
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        usuario  query  string  false  "Filtrar pelo autor da ação"
// @Param        limite   query  int     false  "Máximo de entradas"  default(100)
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("usuario"), c.QueryInt("limite", 100))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListByEntidade godoc
// @Summary      Histórico de uma entidade, mais recente primeiro
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da entidade"
// @Param        limite  query  int     false  "Máximo de entradas"  default(1000)
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/logs/entidade/{id} [get]
func (h *LogHandler) ListByEntidade(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntidade(c.Context(), c.Params("id"), c.QueryInt("limite", 1000))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Estatisticas godoc
// @Summary      Agregados do trilho de auditoria
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LogEstatisticasResponse
// @Router       /api/logs/estatisticas [get]
func (h *LogHandler) Estatisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estatisticas(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
