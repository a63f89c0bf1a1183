package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olayos/pos-api/internal/application/cart"
	"github.com/olayos/pos-api/internal/application/dto"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/domain"
)

// CartHandler maneja el carrito de la venta en curso. Cada operador (JWT)
// tiene su propio carrito.
type CartHandler struct {
	carts       *cart.Service
	catalogFeed *feed.CatalogFeed
}

// NewCartHandler construye el handler.
func NewCartHandler(carts *cart.Service, catalogFeed *feed.CatalogFeed) *CartHandler {
	return &CartHandler{carts: carts, catalogFeed: catalogFeed}
}

// Get godoc
// @Summary      Ver el carrito actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse(GetUserID(c)))
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "ID del producto"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
	}
	product, ok := h.catalogFeed.Find(in.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if err := h.carts.Add(GetUserID(c), product); err != nil {
		switch err {
		case domain.ErrSinStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_STOCK", Message: "producto sin stock"})
		case domain.ErrStockInsuficiente:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: "no hay más stock disponible para este producto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.cartResponse(GetUserID(c)))
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string                      true  "ID del producto"
// @Param        body       body  dto.SetCartQuantityRequest  true  "Cantidad (0 elimina la línea)"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/pos/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.carts.SetQuantity(GetUserID(c), productID, in.Quantity)
	return c.JSON(h.cartResponse(GetUserID(c)))
}

// RemoveItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/pos/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	h.carts.Remove(GetUserID(c), productID)
	return c.JSON(h.cartResponse(GetUserID(c)))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.carts.Clear(GetUserID(c))
	return c.JSON(h.cartResponse(GetUserID(c)))
}

func (h *CartHandler) cartResponse(ownerID string) dto.CartResponse {
	items := h.carts.Items(ownerID)
	out := dto.CartResponse{
		Items: make([]dto.CartItemResponse, 0, len(items)),
		Total: h.carts.Total(ownerID),
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return out
}
