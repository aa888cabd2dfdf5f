package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
)

// ChangesHandler expõe as versões monotônicas de mudança por coleção.
// Clientes comparam com a versão que conhecem para decidir se relistam.
type ChangesHandler struct {
	feed *changefeed.Feed
}

// NewChangesHandler constrói o handler.
func NewChangesHandler(feed *changefeed.Feed) *ChangesHandler {
	return &ChangesHandler{feed: feed}
}

// Versoes godoc
// @Summary      Versão de mudança por coleção
// @Tags         changes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]uint64
// @Router       /api/changes [get]
func (h *ChangesHandler) Versoes(c *fiber.Ctx) error {
	return c.JSON(h.feed.Versoes())
}
