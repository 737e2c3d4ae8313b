package inventory

import (
	"errors"
	"strconv"

	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleStatus)
	app.Get("/images", h.HandleListImages)

	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/image", h.HandleUploadImage)
	group.Get("/:id/image", h.HandleGetImage)
}

// HandleStatus reports that the server is up.
// @Summary Status
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "inventory server is running"})
}

// HandleList returns a page of items, optionally grouped by item number.
// @Summary List Inventory
// @Description Newest items first. A search returns all matches on one page.
// @Tags inventory
// @Produce json
// @Param search query string false "Matches item number, title or variation details"
// @Param page query int false "Page number" default(1)
// @Param group query int false "1 groups variants by item number"
// @Success 200 {object} models.Page[models.Item]
// @Failure 500 {object} map[string]string
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)

	var (
		result any
		err    error
	)
	if c.QueryBool("group") {
		result, err = h.service.ListGrouped(c.Context(), search, page)
	} else {
		result, err = h.service.List(c.Context(), search, page)
	}
	if err != nil {
		return h.fail(c, "List inventory failed", err)
	}
	return c.JSON(result)
}

// HandleGet returns a single item.
// @Summary Get Item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, "Get item failed", err)
	}
	return c.JSON(item)
}

// HandleCreate adds an item.
// @Summary Create Item
// @Description A free client supplied id is kept, otherwise a new id is assigned.
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ItemInput true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string
// @Router /inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	item, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, "Create item failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate overwrites an item.
// @Summary Update Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemInput true "Item"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	item, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return h.fail(c, "Update item failed", err)
	}
	return c.JSON(item)
}

// HandleDelete removes an item.
// @Summary Delete Item
// @Tags inventory
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, "Delete item failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadImage stores the image of an item.
// @Summary Upload Item Image
// @Description Unknown ids get a placeholder item.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Item ID"
// @Param file formData file true "Image"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Router /inventory/{id}/image [post]
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, "Open upload failed", err)
	}
	defer f.Close()

	item, err := h.service.UploadImage(c.Context(), id, fh.Filename, f, fh.Size)
	if err != nil {
		return h.fail(c, "Upload image failed", err)
	}
	return c.JSON(item)
}

// HandleGetImage streams the image of an item.
// @Summary Get Item Image
// @Tags images
// @Produce octet-stream
// @Param id path int true "Item ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /inventory/{id}/image [get]
func (h *Handler) HandleGetImage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	obj, contentType, err := h.service.OpenImage(c.Context(), id)
	if err != nil {
		return h.fail(c, "Get image failed", err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(obj)
}

// HandleListImages lists the items that have an image.
// @Summary List Images
// @Tags images
// @Produce json
// @Success 200 {array} models.ImageRef
// @Router /images [get]
func (h *Handler) HandleListImages(c *fiber.Ctx) error {
	refs, err := h.service.Images(c.Context())
	if err != nil {
		return h.fail(c, "List images failed", err)
	}
	return c.JSON(refs)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
}

// fail maps service errors to a status code and logs unexpected ones.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoImage):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrImageType):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
