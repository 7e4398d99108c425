package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Auto-load ./.env if present before reading vars.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Support a lightweight migrate command: `./kakeibo migrate`
	// It runs AutoMigrate and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		slog.Info("migration completed")
		return
	}

	initDB()

	store := NewGormTransactionStore(db)
	service := NewTransactionService(store)
	handler := newTransactionHandler(service)

	r := gin.Default()
	setupRoutes(r, handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	slog.Info("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server error:", err)
	}
}
