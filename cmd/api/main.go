package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/catalogo-api/internal/application/sales"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/sku"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/metrics"
)

const swaggerFile = "./docs/swagger.json"

// storage puertos de persistencia según DB_DRIVER.
type storage struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	tx       sales.TxRunner
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer store.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(cfg.Metrics.Namespace, reg)

	productLog := log.Component("products")
	generator := sku.NewGenerator(nil)
	productUC := usecase.NewProductUseCase(store.products, generator, usecase.ProductConfig{
		MaxCodeAttempts: cfg.SKU.MaxAttempts,
		Log:             &productLog,
		Metrics:         appMetrics,
	})
	skuUC := usecase.NewSKUUseCase(generator, appMetrics)
	labelUC := usecase.NewLabelUseCase(store.products, infrapdf.NewMarotoLabelGenerator(cfg.App.Name))
	saleUC := sales.NewSaleUseCase(store.tx, store.sales)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.Metrics(appMetrics))
		app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Catálogo API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db_driver": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		LabelUC:   labelUC,
		SKUUC:     skuUC,
		SaleUC:    saleUC,
		JWTSecret: cfg.JWT.Secret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		// Puerto ocupado u otro fallo al abrir el listener: no hay nada que apagar.
		store.close()
		log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP no pudo iniciar")
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage conecta PostgreSQL y aplica migraciones, o arma el almacén en memoria con DB_DRIVER=memory.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{
			products: memory.NewProductRepository(s),
			sales:    memory.NewSaleRepository(s),
			tx:       memory.NewTxRunner(s),
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Strs("applied", applied).Msg("migraciones al día")
	return &storage{
		products: postgres.NewProductRepository(pool),
		sales:    postgres.NewSaleRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}
