package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/olayos/pos-api/pkg/logger"
)

// Canales de notificación emitidos por los triggers de las tablas.
const (
	ChannelProducts = "pos_products"
	ChannelSales    = "pos_sales"
)

// Listener escucha LISTEN/NOTIFY en una conexión dedicada y despacha cada
// notificación al handler de su canal. Es el sustituto, del lado del
// servidor, de la suscripción push de la base en tiempo real: cada aviso
// dispara la recarga del snapshot completo del feed correspondiente.
type Listener struct {
	dsn      string
	log      *logger.Logger
	handlers map[string]func(context.Context)
}

// NewListener construye el listener. Registrar handlers con Handle antes de Run.
func NewListener(dsn string, log *logger.Logger) *Listener {
	return &Listener{dsn: dsn, log: log, handlers: make(map[string]func(context.Context))}
}

// Handle registra el handler a invocar por cada notificación del canal.
func (l *Listener) Handle(channel string, fn func(context.Context)) {
	l.handlers[channel] = fn
}

// Run escucha hasta que el contexto se cancele, reconectando ante cualquier
// caída de la conexión. Pensado para correr en una goroutine propia.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			l.log.Warn().Err(err).Msg("conexión LISTEN caída, reintentando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	for channel := range l.handlers {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			return err
		}
	}
	l.log.Info().Int("channels", len(l.handlers)).Msg("escuchando notificaciones de la base")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if fn, ok := l.handlers[notification.Channel]; ok {
			fn(ctx)
		}
	}
}
