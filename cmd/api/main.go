package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/nutallis/nutallis-api/internal/application/analytics"
	"github.com/nutallis/nutallis-api/internal/application/auth"
	"github.com/nutallis/nutallis-api/internal/application/cart"
	"github.com/nutallis/nutallis-api/internal/application/catalog"
	"github.com/nutallis/nutallis-api/internal/application/checkout"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
	infrapayment "github.com/nutallis/nutallis-api/internal/infrastructure/payment"
	infrapdf "github.com/nutallis/nutallis-api/internal/infrastructure/pdf"
	"github.com/nutallis/nutallis-api/internal/infrastructure/postgres"
	httpRouter "github.com/nutallis/nutallis-api/internal/interfaces/http"
	"github.com/nutallis/nutallis-api/pkg/config"
	"github.com/nutallis/nutallis-api/pkg/logger"

	_ "github.com/nutallis/nutallis-api/docs" // especificação swagger
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	// Tabela de desconto por faixa de peso, fixa por release.
	table := pricing.DefaultTable()
	if err := table.Validate(); err != nil {
		log.Fatal().Err(err).Msg("tabela de desconto inválida")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := catalog.NewProductUseCase(productRepo, table)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	cartUC := cart.NewUseCase(cartRepo, productRepo, categoryRepo, table)

	gateway := infrapayment.NewGateway(cfg.Payment.BaseURL, cfg.Payment.APIKey)
	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	checkoutUC := checkout.NewUseCase(
		txRunner, cartRepo, userRepo, orderRepo,
		gateway, receipts, table, log,
	)
	orderUC := checkout.NewOrderUseCase(orderRepo)

	reorderUC := appanalytics.NewReorderUseCase(
		productRepo, orderRepo,
		cfg.Pricing.WindowDays, cfg.Pricing.ProjectionDays, nil,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(financeRepo, reorderUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nutallis API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		ReorderUC:   reorderUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
