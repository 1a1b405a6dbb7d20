package handlers

import (
	"fmt"

	"ledgerly/internal/services/export"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportWallet streams a statement file; errors still use the JSON envelope.
func (h *ExportHandler) ExportWallet(c *fiber.Ctx) error {
	doc, err := h.exportService.Export(c.UserContext(), c.Params("id"), utils.GetUserID(c), c.Query("format"))
	if err != nil {
		return utils.Error(c, err)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Body)
}
