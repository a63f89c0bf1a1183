package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olayos/pos-api/internal/application/checkout"
	"github.com/olayos/pos-api/internal/application/dto"
	"github.com/olayos/pos-api/internal/domain"
	"github.com/olayos/pos-api/internal/domain/entity"
)

// CheckoutHandler finaliza la venta del carrito y gestiona la boleta.
//
// El flujo imita al terminal físico: checkout registra la venta y descuenta
// stock, pero el carrito sigue visible hasta que el operador decide si imprime
// la boleta (receipt) o no (complete). Ambas terminan vaciando el carrito.
type CheckoutHandler struct {
	uc      *checkout.CheckoutUseCase
	receipt *checkout.ReceiptUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.CheckoutUseCase, receipt *checkout.ReceiptUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, receipt: receipt}
}

// Checkout godoc
// @Summary      Finalizar la venta del carrito
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.Checkout(c.UserContext(), GetUserID(c), in.PaymentMethod)
	if err != nil {
		if errors.Is(err, domain.ErrCarritoVacio) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CARRITO_VACIO", Message: "el carrito está vacío"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paymentMethod debe ser efectivo o tarjeta"})
		}
		if errors.Is(err, domain.ErrStockInsuficiente) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: "stock insuficiente para completar la venta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(*sale))
}

// Complete godoc
// @Summary      Terminar el checkout sin imprimir boleta
// @Tags         checkout
// @Security     Bearer
// @Success      204  "carrito vaciado"
// @Router       /api/pos/checkout/complete [post]
func (h *CheckoutHandler) Complete(c *fiber.Ctx) error {
	h.uc.Complete(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Boleta de una venta en PDF; termina el checkout en curso
// @Tags         checkout
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pos/sales/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.receipt.ReceiptPDF(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Imprimir la boleta es la otra forma de terminar el checkout.
	h.uc.Complete(GetUserID(c))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:            s.ID,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
		Total:         s.Total,
		Date:          s.Date,
		PaymentMethod: s.PaymentMethod,
	}
	for _, item := range s.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return out
}
