package cashier_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
	"github.com/olayos/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSessionStore struct {
	mu      sync.Mutex
	saved   *entity.CashSession
	loadErr error
	saveErr error
}

func (s *fakeSessionStore) Load() (*entity.CashSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved, s.loadErr
}

func (s *fakeSessionStore) Save(session *entity.CashSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *session
	s.saved = &cp
	return nil
}

func (s *fakeSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
	return nil
}
type fakePDFGenerator struct {
	err   error
	calls int
}

func (g *fakePDFGenerator) GenerateClosingReportPDF(_ context.Context, _ pos.ClosingReport) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales = append(r.sales, s); return nil }
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, error) {
	return nil, nil
}
func (r *fakeSaleRepo) List() ([]*entity.Sale, error) { return r.sales, nil }

func salesFeedWith(t *testing.T, sales ...*entity.Sale) *feed.SalesFeed {
	t.Helper()
	f := feed.NewSalesFeed(&fakeSaleRepo{sales: sales})
	require.NoError(t, f.Refresh(context.Background()))
	return f
}

func ventaHoy(total int64, pago string) *entity.Sale {
	return &entity.Sale{
		ID:            "s-" + pago,
		Total:         decimal.NewFromInt(total),
		Date:          time.Now(),
		PaymentMethod: pago,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_ArrancaCerradaSinRespaldo(t *testing.T) {
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())
	assert.False(t, uc.Status().IsOpen)
}

func TestSession_RecuperaSesionGuardada(t *testing.T) {
	openedAt := time.Now().Add(-2 * time.Hour)
	store := &fakeSessionStore{saved: &entity.CashSession{
		IsOpen:        true,
		OpeningAmount: decimal.NewFromInt(5000),
		OpenedAt:      &openedAt,
	}}
	uc := cashier.NewSessionUseCase(store, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())

	s := uc.Status()
	assert.True(t, s.IsOpen, "la sesión respaldada debe sobrevivir al reinicio")
	assert.True(t, s.OpeningAmount.Equal(decimal.NewFromInt(5000)))
}

func TestSession_RespaldoCorruptoDejaCajaCerrada(t *testing.T) {
	store := &fakeSessionStore{loadErr: errors.New("json corrupto")}
	uc := cashier.NewSessionUseCase(store, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())
	assert.False(t, uc.Status().IsOpen)
}

func TestOpen_MontoValido(t *testing.T) {
	store := &fakeSessionStore{}
	uc := cashier.NewSessionUseCase(store, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())

	s := uc.Open("15000")
	assert.True(t, s.IsOpen)
	assert.True(t, s.OpeningAmount.Equal(decimal.NewFromInt(15000)))
	require.NotNil(t, s.OpenedAt)
	require.NotNil(t, store.saved, "la apertura debe respaldarse en el store")
	assert.True(t, store.saved.OpeningAmount.Equal(decimal.NewFromInt(15000)))
}

func TestOpen_MontoInvalidoSeCoaccionaACero(t *testing.T) {
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())

	for _, raw := range []string{"", "abc", "-500", "12,5x"} {
		s := uc.Open(raw)
		assert.True(t, s.IsOpen, "la apertura nunca falla por el monto (%q)", raw)
		assert.True(t, s.OpeningAmount.IsZero(), "monto %q debe coaccionarse a 0", raw)
	}
}

func TestOpen_FallaDeRespaldoNoImpideAbrir(t *testing.T) {
	store := &fakeSessionStore{saveErr: errors.New("disco lleno")}
	uc := cashier.NewSessionUseCase(store, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())

	s := uc.Open("1000")
	assert.True(t, s.IsOpen, "una falla de escritura solo se registra, la caja abre igual")
}

func TestExpectedCash_FondoMasEfectivoDelDia(t *testing.T) {
	sf := salesFeedWith(t,
		ventaHoy(1500, entity.PaymentEfectivo),
		ventaHoy(2500, entity.PaymentTarjeta),
	)
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, sf, &fakePDFGenerator{}, logger.Nop())
	uc.Open("5000")

	assert.True(t, uc.ExpectedCash().Equal(decimal.NewFromInt(6500)),
		"esperado = fondo 5000 + efectivo 1500; la tarjeta no entra al cajón")
}

func TestExpectedCash_AcumulaTodasLasVentasEnEfectivo(t *testing.T) {
	sf := salesFeedWith(t,
		&entity.Sale{ID: "c1", Total: decimal.NewFromInt(1500), Date: time.Now(), PaymentMethod: entity.PaymentEfectivo},
		&entity.Sale{ID: "c2", Total: decimal.NewFromInt(2500), Date: time.Now(), PaymentMethod: entity.PaymentEfectivo},
	)
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, sf, &fakePDFGenerator{}, logger.Nop())
	uc.Open("5000")

	assert.True(t, uc.ExpectedCash().Equal(decimal.NewFromInt(9000)))
}

func TestClose_GeneraReporteYReiniciaLaSesion(t *testing.T) {
	store := &fakeSessionStore{}
	pdf := &fakePDFGenerator{}
	sf := salesFeedWith(t,
		ventaHoy(1000, entity.PaymentEfectivo),
		ventaHoy(3000, entity.PaymentTarjeta),
	)
	uc := cashier.NewSessionUseCase(store, sf, pdf, logger.Nop())
	uc.Open("2000")

	report, pdfBytes, err := uc.Close(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.calls)
	assert.NotEmpty(t, pdfBytes)

	assert.Equal(t, 2, report.TransactionCount)
	assert.True(t, report.ExpectedCash.Equal(decimal.NewFromInt(3000))) // 2000 + 1000

	assert.False(t, uc.Status().IsOpen)
	assert.Nil(t, store.saved, "el respaldo local debe limpiarse al cerrar")
}

func TestClose_SinImprimirNoLlamaAlGenerador(t *testing.T) {
	pdf := &fakePDFGenerator{}
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, salesFeedWith(t), pdf, logger.Nop())
	uc.Open("1000")

	_, pdfBytes, err := uc.Close(context.Background(), false)
	require.NoError(t, err)
	assert.Zero(t, pdf.calls)
	assert.Nil(t, pdfBytes)
	assert.False(t, uc.Status().IsOpen)
}

func TestSession_AccesoConcurrente(t *testing.T) {
	uc := cashier.NewSessionUseCase(&fakeSessionStore{}, salesFeedWith(t), &fakePDFGenerator{}, logger.Nop())

	// Un sondeo de estado concurrente con aperturas y cierres es el patrón
	// normal de los handlers HTTP; no debe haber carreras sobre la sesión.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.Open("1000")
			_ = uc.Status()
			_ = uc.ExpectedCash()
			_, _, _ = uc.Close(context.Background(), false)
		}()
	}
	wg.Wait()

	assert.False(t, uc.Status().IsOpen, "tras los cierres la caja debe quedar cerrada")
}

func TestClose_CierraAunqueLaImpresionFalle(t *testing.T) {
	store := &fakeSessionStore{}
	pdf := &fakePDFGenerator{err: errors.New("impresora desconectada")}
	uc := cashier.NewSessionUseCase(store, salesFeedWith(t), pdf, logger.Nop())
	uc.Open("8000")

	report, pdfBytes, err := uc.Close(context.Background(), true)
	assert.Error(t, err, "el error de impresión se informa al llamador")
	assert.Nil(t, pdfBytes)
	assert.True(t, report.OpeningAmount.Equal(decimal.NewFromInt(8000)),
		"el reporte igual se construye con las cifras del cierre")

	// La caja queda cerrada pase lo que pase con la impresión.
	assert.False(t, uc.Status().IsOpen)
	assert.Nil(t, store.saved)
}
