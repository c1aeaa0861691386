package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kirankarlapati/fruitanalyser/internal/chatbot"
	"github.com/kirankarlapati/fruitanalyser/internal/classifier"
	"github.com/kirankarlapati/fruitanalyser/internal/db"
	"github.com/kirankarlapati/fruitanalyser/internal/insights"
	"github.com/kirankarlapati/fruitanalyser/internal/logger"
	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
	"github.com/kirankarlapati/fruitanalyser/internal/router"
	"github.com/kirankarlapati/fruitanalyser/internal/storage"
	"github.com/kirankarlapati/fruitanalyser/internal/upload"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"ML_SERVICE_URL",
		"DEEPSEEK_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	appLogger, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer appLogger.Close()

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(ctx, appLogger)
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(ctx)
	if err != nil {
		appLogger.Fatalw("R2 init failed", "error", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	predictionRepo := prediction.NewPostgresRepository(pgDB)
	predictionService := prediction.NewService(predictionRepo)

	insightsService := insights.NewService(predictionRepo)

	mlClient := classifier.NewClient(os.Getenv("ML_SERVICE_URL"))
	uploadService := upload.NewService(
		mlClient,
		r2Client,
		predictionService,
		appLogger,
	)

	chatService := chatbot.NewService(chatbot.NewDeepSeekClient())

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Log:      appLogger,
		Upload:   upload.NewHandler(uploadService),
		History:  prediction.NewHandler(predictionService),
		Insights: insights.NewHandler(insightsService),
		Chatbot:  chatbot.NewHandler(chatService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	appLogger.Infow("API starting", "port", port)

	if err := r.Run(":" + port); err != nil {
		appLogger.Fatalw("server stopped", "error", err)
	}
}
