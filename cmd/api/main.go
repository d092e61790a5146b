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

	_ "github.com/jhoicas/inventario-lite/docs"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/inventario-lite/internal/interfaces/http"
	"github.com/jhoicas/inventario-lite/internal/store"
	"github.com/jhoicas/inventario-lite/pkg/config"
	"github.com/jhoicas/inventario-lite/pkg/logger"
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
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	snap, err := sqlite.Open(cfg.Store.Path, cfg.Store.Key, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir snapshot store")
	}
	defer snap.Close()

	st, err := store.New(snap, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	// Traza de mutaciones vía el bus de notificaciones
	unsubscribe := st.Subscribe(func(state entity.State) {
		log.Debug().
			Int("products", len(state.Products)).
			Int("movements", len(state.Movements)).
			Msg("estado actualizado")
	})
	defer unsubscribe()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Lite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     st,
		JWTSecret: cfg.JWT.Secret,
		JWTConfig: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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
