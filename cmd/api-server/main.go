package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gematria/internal/words"
	"gematria/pkg/database"
	"gematria/pkg/utils"
)

const (
	serviceName    = "Hebrew Gematria API"
	serviceVersion = "1.0.0"
	serviceMethod  = "Mispar Gadol"
)

func main() {
	_ = godotenv.Load()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	log.Printf("connecting to database: %s", cfg.Redacted())

	// The API still starts when the store is down; only the
	// persistence-backed endpoints degrade.
	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(startupCtx); err != nil {
		log.Printf("database unreachable at startup, lookups will fail until it recovers: %v", err)
	} else if err := database.Migrate(db, cfg.Driver); err != nil {
		log.Printf("db migrate failed, lookups may fail: %v", err)
	} else {
		log.Printf("database ready (%s method)", serviceMethod)
	}
	cancel()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(utils.RequestID())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
			"method":  serviceMethod,
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "db": "ok"})
	})

	wordsRepo := words.NewRepo(db)
	wordsHandler := words.NewHandler(wordsRepo)
	wordsHandler.RegisterRoutes(router.Group("/gematria"))

	srvCfg := utils.LoadServerConfig()
	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
