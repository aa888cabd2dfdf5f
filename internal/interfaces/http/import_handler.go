package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/application/importer"
)

// ImportHandler recebe lotes CSV via multipart e os reconcilia contra o
// estoque. Linhas com erro entram no relatório; o lote nunca aborta.
type ImportHandler struct {
	rc *importer.Reconciler
}

// NewImportHandler constrói o handler.
func NewImportHandler(rc *importer.Reconciler) *ImportHandler {
	return &ImportHandler{rc: rc}
}

// Ativos godoc
// @Summary      Importar ativos via CSV (chave natural: patrimônio)
// @Tags         importacao
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo CSV (; ou ,)"
// @Success      200   {object}  dto.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/ativos [post]
func (h *ImportHandler) Ativos(c *fiber.Ctx) error {
	return h.processar(c, h.rc.ImportarAtivos)
}

// Celulares godoc
// @Summary      Importar celulares via CSV (chave natural: patrimônio)
// @Tags         importacao
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo CSV"
// @Success      200   {object}  dto.ImportReport
// @Router       /api/importar/celulares [post]
func (h *ImportHandler) Celulares(c *fiber.Ctx) error {
	return h.processar(c, h.rc.ImportarCelulares)
}

// Softwares godoc
// @Summary      Importar licenças via CSV (chave natural: nome + PC)
// @Tags         importacao
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo CSV"
// @Success      200   {object}  dto.ImportReport
// @Router       /api/importar/softwares [post]
func (h *ImportHandler) Softwares(c *fiber.Ctx) error {
	return h.processar(c, h.rc.ImportarSoftwares)
}

// Emails godoc
// @Summary      Importar contas de e-mail via CSV (pat_pc OU pat_cel; flags Sim)
// @Tags         importacao
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo CSV"
// @Success      200   {object}  dto.ImportReport
// @Router       /api/importar/emails [post]
func (h *ImportHandler) Emails(c *fiber.Ctx) error {
	return h.processar(c, h.rc.ImportarEmails)
}

func (h *ImportHandler) processar(c *fiber.Ctx, fn importer.LoteFn) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file (multipart) é requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer f.Close()

	report, err := fn(c.Context(), f, GetAtor(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(report)
}
