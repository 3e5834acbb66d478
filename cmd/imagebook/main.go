package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Tedesqui/imagebook/internal/config"
	"github.com/Tedesqui/imagebook/internal/provider/openai"
	"github.com/Tedesqui/imagebook/internal/provider/textract"
	"github.com/Tedesqui/imagebook/internal/proxy"
	"github.com/Tedesqui/imagebook/internal/proxy/handler"
)

func main() {
	configPath := flag.String("config", "imagebook_config.yaml", "path to config YAML")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional; deployed environments set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ocrClient, err := textract.New(ctx, cfg.OCRSettings)
	if err != nil {
		log.Fatalf("init textract client: %v", err)
	}
	imageClient := openai.New(cfg.ImageSettings)

	srv := proxy.NewServer(proxy.ServerConfig{
		Handlers: &handler.Handlers{
			OCR:    ocrClient,
			Images: imageClient,
		},
		MaxBodyBytes: cfg.GeneralSettings.MaxBodyBytes,
	})

	addr := fmt.Sprintf(":%d", cfg.GeneralSettings.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("imagebook listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
