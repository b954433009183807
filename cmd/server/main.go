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

	"github.com/pages-alex-alex2006hw/gulliver/internal/config"
	"github.com/pages-alex-alex2006hw/gulliver/internal/db"
	"github.com/pages-alex-alex2006hw/gulliver/internal/feed"
	"github.com/pages-alex-alex2006hw/gulliver/internal/handler"
	transport "github.com/pages-alex-alex2006hw/gulliver/internal/http"
	"github.com/pages-alex-alex2006hw/gulliver/internal/logger"
	"github.com/pages-alex-alex2006hw/gulliver/internal/render"
	"github.com/pages-alex-alex2006hw/gulliver/internal/repository"
	"github.com/pages-alex-alex2006hw/gulliver/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}

	pwaRepo := repository.NewPwaRepository(dbConn)
	pwaService := service.NewPwaService(pwaRepo, config.DefaultLimit)
	builder := feed.NewBuilder(cfg.Feed, cfg.BaseURL, renderer, config.RenderTimeout)
	pwaHandler := handler.NewPwaHandler(pwaService, builder, int(config.CacheMaxAge.Seconds()))

	router := transport.NewRouter(pwaHandler)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("start server: %v", err)
	}
}
