package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/olayos/pos-api/internal/application/analytics"
	"github.com/olayos/pos-api/internal/application/auth"
	"github.com/olayos/pos-api/internal/application/cart"
	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/application/checkout"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/application/usecase"
	"github.com/olayos/pos-api/internal/infrastructure/localstore"
	infrapdf "github.com/olayos/pos-api/internal/infrastructure/pdf"
	"github.com/olayos/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/olayos/pos-api/internal/interfaces/http"
	"github.com/olayos/pos-api/pkg/config"
	"github.com/olayos/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando terminal POS")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Feeds: snapshots en memoria del catálogo y el historial, refrescados
	// por las escrituras locales y por LISTEN/NOTIFY para las ajenas.
	catalogFeed := feed.NewCatalogFeed(productRepo)
	salesFeed := feed.NewSalesFeed(saleRepo)
	if err := catalogFeed.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del catálogo")
	}
	if err := salesFeed.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del historial de ventas")
	}

	listener := postgres.NewListener(cfg.DB.ConnectionString(), log)
	listener.Handle(postgres.ChannelProducts, func(ctx context.Context) {
		if err := catalogFeed.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("refrescar catálogo por notificación")
		}
	})
	listener.Handle(postgres.ChannelSales, func(ctx context.Context) {
		if err := salesFeed.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("refrescar ventas por notificación")
		}
	})
	go listener.Run(ctx)

	carts := cart.NewService()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.StoreInfo{
		Name:    cfg.POS.StoreName,
		Address: cfg.POS.StoreAddress,
	})
	sessionStore := localstore.NewSessionFileStore(cfg.POS.SessionFile)

	productUC := usecase.NewProductUseCase(productRepo, catalogFeed)
	checkoutUC := checkout.NewCheckoutUseCase(txRunner, carts, catalogFeed, salesFeed, log)
	receiptUC := checkout.NewReceiptUseCase(saleRepo, pdfGenerator)
	sessionUC := cashier.NewSessionUseCase(sessionStore, salesFeed, pdfGenerator, log)
	dashboardUC := analytics.NewDashboardUseCase(catalogFeed, salesFeed)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CatalogFeed: catalogFeed,
		Carts:       carts,
		CheckoutUC:  checkoutUC,
		ReceiptUC:   receiptUC,
		SessionUC:   sessionUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop() // detiene el listener de notificaciones

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("terminal detenido")
}
