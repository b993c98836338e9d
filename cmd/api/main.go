package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// store agrupa los repositorios y el TxRunner del driver elegido.
type store struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	logs      repository.StockLogRepository
	tx        inventory.TxRunner
	close     func()
}

// @title        Inventario Stock API
// @version      1.0
// @description  Proveedores, productos e historial de cambios de stock.
// @BasePath     /
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer st.close()

	supplierUC := usecase.NewSupplierUseCase(st.suppliers, st.products)
	productUC := usecase.NewProductUseCase(st.products, st.suppliers)
	stockUC := inventory.NewStockUseCase(st.tx, st.products, st.suppliers, st.logs, log)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		Name:     cfg.App.Name,
		DocsPath: cfg.App.DocsPath,
	}, httpRouter.RouterDeps{
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		StockUC:    stockUC,
		Log:        log,
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

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	if cfg.DB.Driver == config.DriverSQLite {
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := sqlite.Migrate(db); err != nil {
				return nil, err
			}
			log.Info().Str("path", cfg.SQLite.Path).Msg("esquema SQLite migrado")
		}
		return &store{
			suppliers: sqlite.NewSupplierRepository(db),
			products:  sqlite.NewProductRepository(db),
			logs:      sqlite.NewStockLogRepository(db),
			tx:        sqlite.NewTxRunner(db),
			close: func() {
				if err := sqlite.Close(db); err != nil {
					log.Error().Err(err).Msg("cerrar sqlite")
				}
			},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones PostgreSQL aplicadas")
	}
	return &store{
		suppliers: postgres.NewSupplierRepository(pool),
		products:  postgres.NewProductRepository(pool),
		logs:      postgres.NewStockLogRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
