package exchange

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"

	// HeaderReconcileErrors carries the number of skipped groups of a clean.
	HeaderReconcileErrors = "X-Reconcile-Errors"
)

// Handler handles HTTP requests for spreadsheet exchange.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the exchange routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/exchange")
	group.Post("/clean", h.HandleClean)
	group.Post("/import", h.HandleImport)
	group.Get("/export", h.HandleExport)
}

// readUpload parses the multipart "file" field as a table. A nil table
// means the response has been written.
func (h *Handler) readUpload(c *fiber.Ctx) (*reconcile.Table, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return nil, h.internal(c, "Open upload failed", err)
	}
	defer f.Close()

	table, err := sheet.Read(f, fh.Filename)
	if err != nil {
		var schemaErr *reconcile.SchemaError
		if errors.As(err, &schemaErr) {
			return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return nil, h.internal(c, "Read upload failed", err)
	}
	return table, nil
}

// HandleClean reconciles an uploaded marketplace export.
// @Summary Clean Spreadsheet
// @Description Reconciles a CSV or XLSX export and returns the cleaned sheet.
// @Tags exchange
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "CSV or XLSX file"
// @Param format query string false "xlsx (default), csv or json"
// @Success 200 {file} binary
// @Header 200 {int} X-Reconcile-Errors "Skipped groups"
// @Failure 400 {object} map[string]string
// @Router /exchange/clean [post]
func (h *Handler) HandleClean(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	if format != "xlsx" && format != "csv" && format != "json" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be xlsx, csv or json"})
	}

	table, err := h.readUpload(c)
	if table == nil {
		return err
	}

	result := h.service.Clean(table)
	c.Set(HeaderReconcileErrors, strconv.Itoa(len(result.Errors)))

	var buf bytes.Buffer
	switch format {
	case "json":
		return c.JSON(result)
	case "csv":
		if err := sheet.WriteCleanedCSV(&buf, result.Rows); err != nil {
			return h.internal(c, "Write cleaned csv failed", err)
		}
		return h.download(c, "cleaned_inventory.csv", contentTypeCSV, buf.Bytes())
	default:
		if err := sheet.WriteCleanedXLSX(&buf, result.Rows); err != nil {
			return h.internal(c, "Write cleaned workbook failed", err)
		}
		return h.download(c, "cleaned_inventory.xlsx", contentTypeXLSX, buf.Bytes())
	}
}

// HandleImport reconciles an uploaded spreadsheet and stores its rows.
// @Summary Import Spreadsheet
// @Tags exchange
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param dry_run query bool false "Report without inserting"
// @Success 200 {object} ImportReport
// @Failure 400 {object} map[string]string
// @Router /exchange/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	table, err := h.readUpload(c)
	if table == nil {
		return err
	}

	report, err := h.service.Import(c.Context(), table, c.QueryBool("dry_run"))
	if err != nil {
		return h.internal(c, "Import failed", err)
	}
	return c.JSON(report)
}

// HandleExport downloads the whole inventory as a workbook.
// @Summary Export Inventory
// @Tags exchange
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /exchange/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	export, err := h.service.Export(c.Context())
	if err != nil {
		return h.internal(c, "Export failed", err)
	}
	return h.download(c, export.Filename, contentTypeXLSX, export.Data)
}

func (h *Handler) download(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func (h *Handler) internal(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
