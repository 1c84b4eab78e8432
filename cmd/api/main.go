package main

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/app"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.Run(); err != nil {
		logger.Fatal("run api failed", zap.Error(err))
	}
}
