package cashier

import (
	"context"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
)

// SessionStore persistencia local de la sesión de caja: se lee una vez al
// arrancar, se escribe en cada apertura y se limpia al cerrar.
type SessionStore interface {
	// Load devuelve la sesión guardada, o nil si no hay ninguna.
	Load() (*entity.CashSession, error)
	Save(session *entity.CashSession) error
	Clear() error
}

// ClosingReportPDFGenerator genera el reporte de cierre de caja en PDF.
// Colaborador de presentación, sin lógica de negocio.
type ClosingReportPDFGenerator interface {
	GenerateClosingReportPDF(ctx context.Context, report pos.ClosingReport) ([]byte, error)
}
