package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/application/dto"
	"github.com/olayos/pos-api/internal/domain/pos"
)

// CashierHandler maneja la sesión de caja: estado, apertura y cierre.
type CashierHandler struct {
	uc *cashier.SessionUseCase
}

// NewCashierHandler construye el handler.
func NewCashierHandler(uc *cashier.SessionUseCase) *CashierHandler {
	return &CashierHandler{uc: uc}
}

// Status godoc
// @Summary      Estado de la caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/cash [get]
func (h *CashierHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.sessionResponse())
}

// Open godoc
// @Summary      Abrir la caja con un fondo inicial
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  true  "Fondo inicial (texto; no numérico o negativo = 0)"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/cash/open [post]
func (h *CashierHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.uc.Open(in.OpeningAmount)
	return c.JSON(h.sessionResponse())
}

// Close godoc
// @Summary      Cerrar la caja con arqueo
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseSessionRequest  true  "print: imprimir el reporte de cierre"
// @Success      200   {object}  dto.ClosingReportResponse
// @Router       /api/cash/close [post]
func (h *CashierHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, pdfBytes, printErr := h.uc.Close(c.UserContext(), in.Print)
	if in.Print && printErr == nil && len(pdfBytes) > 0 {
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-caja-`+report.ClosedAt.Format("2006-01-02")+`.pdf"`)
		return c.Send(pdfBytes)
	}
	out := toClosingReportResponse(report)
	if printErr != nil {
		// La caja ya quedó cerrada; solo se informa que la impresión falló.
		out.PrintError = printErr.Error()
	}
	return c.JSON(out)
}

func (h *CashierHandler) sessionResponse() dto.SessionResponse {
	s := h.uc.Status()
	return dto.SessionResponse{
		IsOpen:        s.IsOpen,
		OpeningAmount: s.OpeningAmount,
		OpenedAt:      s.OpenedAt,
		ExpectedCash:  h.uc.ExpectedCash(),
	}
}

func toClosingReportResponse(r pos.ClosingReport) dto.ClosingReportResponse {
	return dto.ClosingReportResponse{
		TransactionCount: r.TransactionCount,
		CashTotal:        r.CashTotal,
		CardTotal:        r.CardTotal,
		GrandTotal:       r.GrandTotal,
		OpeningAmount:    r.OpeningAmount,
		ExpectedCash:     r.ExpectedCash,
		OpenedAt:         r.OpenedAt,
		ClosedAt:         r.ClosedAt,
	}
}
