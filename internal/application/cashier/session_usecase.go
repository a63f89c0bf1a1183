// Package cashier maneja la sesión de caja del terminal: apertura con fondo
// inicial, cierre con arqueo opcionalmente impreso, y su persistencia local.
package cashier

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
	"github.com/olayos/pos-api/pkg/logger"
)

// SessionUseCase estado de la caja del terminal (singleton por dispositivo,
// no hay concepto de multi-caja). La sesión vive en memoria y se respalda en
// el SessionStore para sobrevivir reinicios. Los handlers HTTP la consultan
// y mutan concurrentemente, por eso el mutex.
type SessionUseCase struct {
	store     SessionStore
	salesFeed *feed.SalesFeed
	pdf       ClosingReportPDFGenerator
	log       *logger.Logger

	mu      sync.Mutex
	session entity.CashSession
}

// NewSessionUseCase construye el caso de uso recuperando la sesión guardada.
// Un archivo ausente o corrupto deja la caja cerrada.
func NewSessionUseCase(store SessionStore, salesFeed *feed.SalesFeed, pdf ClosingReportPDFGenerator, log *logger.Logger) *SessionUseCase {
	uc := &SessionUseCase{store: store, salesFeed: salesFeed, pdf: pdf, log: log}
	saved, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("cargar sesión de caja guardada")
	}
	if saved != nil {
		uc.session = *saved
	}
	return uc
}

// Status devuelve el estado actual de la sesión.
func (uc *SessionUseCase) Status() entity.CashSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session
}

// ExpectedCash devuelve fondo inicial + ventas en efectivo del día.
// Con la caja cerrada el valor no es significativo (0 + ventas).
func (uc *SessionUseCase) ExpectedCash() decimal.Decimal {
	today := pos.TodaySales(uc.salesFeed.Current(), time.Now())
	cash, _ := pos.TotalsByPayment(today)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session.ExpectedCash(cash)
}

// Open abre la caja con el fondo inicial indicado. Un monto no numérico o
// negativo se coacciona a 0: la apertura nunca falla por el monto. El estado
// se respalda en el store local; una falla de escritura se registra pero no
// impide la apertura.
func (uc *SessionUseCase) Open(openingAmount string) entity.CashSession {
	amount, err := decimal.NewFromString(strings.TrimSpace(openingAmount))
	if err != nil || amount.IsNegative() {
		amount = decimal.Zero
	}
	now := time.Now()
	session := entity.CashSession{
		IsOpen:        true,
		OpeningAmount: amount,
		OpenedAt:      &now,
	}

	uc.mu.Lock()
	uc.session = session
	uc.mu.Unlock()

	if err := uc.store.Save(&session); err != nil {
		uc.log.Warn().Err(err).Msg("persistir sesión de caja")
	}
	return session
}

// Close cierra la caja. Con print se genera primero el reporte de arqueo en
// PDF; la sesión se restablece a cerrada/vacía y el respaldo local se limpia
// PASE LO QUE PASE con la impresión — un error del generador se devuelve para
// informar al usuario, pero la caja queda cerrada igual.
func (uc *SessionUseCase) Close(ctx context.Context, print bool) (pos.ClosingReport, []byte, error) {
	today := pos.TodaySales(uc.salesFeed.Current(), time.Now())

	uc.mu.Lock()
	report := pos.BuildClosingReport(uc.session, today, time.Now())
	uc.session = entity.CashSession{}
	uc.mu.Unlock()

	var pdfBytes []byte
	var printErr error
	if print {
		pdfBytes, printErr = uc.pdf.GenerateClosingReportPDF(ctx, report)
		if printErr != nil {
			uc.log.Error().Err(printErr).Msg("generar reporte de cierre")
		}
	}

	if err := uc.store.Clear(); err != nil {
		uc.log.Warn().Err(err).Msg("limpiar sesión de caja guardada")
	}

	return report, pdfBytes, printErr
}
