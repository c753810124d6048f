package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	httphandlers "github.com/InnoAir-lgtm/server/internal/handlers/http"
	"github.com/InnoAir-lgtm/server/internal/handlers/middleware"
	"github.com/InnoAir-lgtm/server/internal/infrastructure/config"
	"github.com/InnoAir-lgtm/server/internal/infrastructure/logging"
	"github.com/InnoAir-lgtm/server/internal/infrastructure/persistence/postgres"
	"github.com/InnoAir-lgtm/server/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting server",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	empresaRepo := postgres.NewEmpresaRepository(db)
	papelRepo := postgres.NewPapelRepository(db)
	permissaoRepo := postgres.NewPermissaoRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)

	// Inicializar services
	dbTimeout := cfg.Database.Timeout()
	empresaService := services.NewEmpresaService(empresaRepo, logger, dbTimeout)
	papelService := services.NewPapelService(papelRepo, logger, dbTimeout)
	permissaoService := services.NewPermissaoService(permissaoRepo, logger, dbTimeout)
	usuarioService := services.NewUsuarioService(usuarioRepo, logger, dbTimeout)
	authService := services.NewAuthService(usuarioRepo, logger, dbTimeout)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Empresa:   httphandlers.NewEmpresaHandler(empresaService, logger),
		Papel:     httphandlers.NewPapelHandler(papelService, logger),
		Permissao: httphandlers.NewPermissaoHandler(permissaoService, logger),
		Usuario:   httphandlers.NewUsuarioHandler(usuarioService, logger),
		Auth:      httphandlers.NewAuthHandler(authService, logger),
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Falha não tratada em handler vira 500 genérico; o detalhe fica no log
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic em handler", "error", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.MessageResponse{Message: "Erro interno do servidor."})
	}))

	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigin))

	// Health check
	router.GET("/health", httphandlers.Health(cfg.Env))

	// API routes
	httphandlers.RegisterRotas(router, handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
