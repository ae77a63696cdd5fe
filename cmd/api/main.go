package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/ferreplus/ferreteria-api/internal/application/analytics"
	"github.com/ferreplus/ferreteria-api/internal/application/auth"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	infrapdf "github.com/ferreplus/ferreteria-api/internal/infrastructure/pdf"
	"github.com/ferreplus/ferreteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/ferreplus/ferreteria-api/internal/interfaces/http"
	"github.com/ferreplus/ferreteria-api/pkg/config"
	"github.com/ferreplus/ferreteria-api/pkg/jwt"
	"github.com/ferreplus/ferreteria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ferreteriaRepo := postgres.NewFerreteriaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	suscripcionRepo := postgres.NewSuscripcionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, ferreteriaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ferreteriaUC := usecase.NewFerreteriaUseCase(ferreteriaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, suscripcionRepo)
	pedidoUC := usecase.NewPedidoUseCase(txRunner, pedidoRepo, productoRepo, clienteRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	suscripcionUC := usecase.NewSuscripcionUseCase(suscripcionRepo)
	ventasUC := appanalytics.NewVentasUseCase(analyticsRepo)

	// PDF: comprobante gráfico del pedido
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pedidoPDFUC := usecase.NewPedidoPDFUseCase(
		pedidoRepo, ferreteriaRepo, clienteRepo, productoRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ferretería Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		FerreteriaUC:  ferreteriaUC,
		CategoriaUC:   categoriaUC,
		ProductoUC:    productoUC,
		PedidoUC:      pedidoUC,
		PedidoPDFUC:   pedidoPDFUC,
		ClienteUC:     clienteUC,
		SuscripcionUC: suscripcionUC,
		VentasUC:      ventasUC,
		JWTChain:      jwt.NewChain(cfg.JWT.Secret, cfg.JWT.LegacySecret),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
