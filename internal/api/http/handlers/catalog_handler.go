package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// CatalogHandler covers fabric inventory and garment orders.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Fabrics handles GET /fabrics.
func (h *CatalogHandler) Fabrics(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	filter := upstream.FabricFilter{
		Type:        c.Query("type"),
		Color:       c.Query("color"),
		InStockOnly: c.QueryBool("in_stock", false),
	}
	fabrics, err := h.catalog.Fabrics(c.UserContext(), sess.Token, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fabrics})
}

// CreateOrder handles POST /orders.
func (h *CatalogHandler) CreateOrder(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	var req upstream.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.AppointmentID == 0 || req.GarmentType == "" {
		return util.NewValidationError("appointment_id and garment_type required", nil)
	}
	order, err := h.catalog.CreateOrder(c.UserContext(), sess.Token, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": order})
}

// Orders handles GET /orders.
func (h *CatalogHandler) Orders(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	orders, err := h.catalog.Orders(c.UserContext(), sess.Token, domain.OrderStatus(c.Query("status")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// Order handles GET /orders/:id.
func (h *CatalogHandler) Order(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	order, err := h.catalog.Order(c.UserContext(), sess.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}
