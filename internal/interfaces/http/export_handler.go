package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/export"
)

// ReportGenerator genera el informe PDF del inventario.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, items []entity.InventoryItem, now time.Time) ([]byte, error)
}

// ExportHandler descargas del inventario y del libro de salidas (protegido).
// Los exports de inventario aceptan los mismos filtros que el listado: lo que
// se descarga es exactamente la vista filtrada.
type ExportHandler struct {
	items   *usecase.ItemUseCase
	outputs *usecase.OutputUseCase
	pdf     ReportGenerator
	now     func() time.Time
}

// NewExportHandler construye el handler.
func NewExportHandler(items *usecase.ItemUseCase, outputs *usecase.OutputUseCase, pdf ReportGenerator) *ExportHandler {
	return &ExportHandler{items: items, outputs: outputs, pdf: pdf, now: time.Now}
}

func (h *ExportHandler) visibleItems(c *fiber.Ctx) ([]entity.InventoryItem, error) {
	var q dto.ListItemsQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, domain.ErrInvalidInput
	}
	out, err := h.items.List(q)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func sendDownload(c *fiber.Ctx, filename, contentType string, blob []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(blob)
}

// InventoryCSV godoc
// @Summary      Exportar inventario a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        category    query  string  false  "Sonorisation | Quran Book | Other"
// @Param        search      query  string  false  "Texto a buscar"
// @Param        subsection  query  string  false  "Subsección exacta, o All"
// @Param        sort_key    query  string  false  "name | quantity | location"
// @Param        sort_dir    query  string  false  "asc | desc"
// @Success      200  {string}  string  "CSV"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.csv [get]
func (h *ExportHandler) InventoryCSV(c *fiber.Ctx) error {
	items, err := h.visibleItems(c)
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.InventoryFilename("csv", h.now()), "text/csv; charset=utf-8", export.InventoryCSV(items))
}

// InventoryXLSX godoc
// @Summary      Exportar inventario a XLSX
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {string}  string  "XLSX"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.xlsx [get]
func (h *ExportHandler) InventoryXLSX(c *fiber.Ctx) error {
	items, err := h.visibleItems(c)
	if err != nil {
		return exportError(c, err)
	}
	blob, err := export.InventoryXLSX(items)
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.InventoryFilename("xlsx", h.now()),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}

// InventoryXML godoc
// @Summary      Exportar inventario a XML
// @Tags         export
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string  "XML"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.xml [get]
func (h *ExportHandler) InventoryXML(c *fiber.Ctx) error {
	items, err := h.visibleItems(c)
	if err != nil {
		return exportError(c, err)
	}
	blob, err := export.InventoryXML(items, h.now())
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.InventoryFilename("xml", h.now()), "application/xml; charset=utf-8", blob)
}

// InventoryPDF godoc
// @Summary      Informe PDF del inventario
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.pdf [get]
func (h *ExportHandler) InventoryPDF(c *fiber.Ctx) error {
	items, err := h.visibleItems(c)
	if err != nil {
		return exportError(c, err)
	}
	blob, err := h.pdf.GenerateInventoryReport(c.Context(), items, h.now())
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.InventoryFilename("pdf", h.now()), "application/pdf", blob)
}

// OutputsCSV godoc
// @Summary      Exportar el libro de salidas a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "CSV"
// @Router       /api/export/outputs.csv [get]
func (h *ExportHandler) OutputsCSV(c *fiber.Ctx) error {
	return sendDownload(c, export.OutputsFilename("csv", h.now()), "text/csv; charset=utf-8", export.OutputsCSV(h.outputs.List()))
}

// OutputsXLSX godoc
// @Summary      Exportar el libro de salidas a XLSX
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {string}  string  "XLSX"
// @Router       /api/export/outputs.xlsx [get]
func (h *ExportHandler) OutputsXLSX(c *fiber.Ctx) error {
	blob, err := export.OutputsXLSX(h.outputs.List())
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.OutputsFilename("xlsx", h.now()),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}

// OutputsXML godoc
// @Summary      Exportar el libro de salidas a XML
// @Tags         export
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string  "XML"
// @Router       /api/export/outputs.xml [get]
func (h *ExportHandler) OutputsXML(c *fiber.Ctx) error {
	blob, err := export.OutputsXML(h.outputs.List(), h.now())
	if err != nil {
		return exportError(c, err)
	}
	return sendDownload(c, export.OutputsFilename("xml", h.now()), "application/xml; charset=utf-8", blob)
}

func exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de filtro inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
