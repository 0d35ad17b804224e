package main

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/config"
	"github.com/orafinite/ecom-fe/internal/repository/file"
	"github.com/orafinite/ecom-fe/internal/server"
	"github.com/orafinite/ecom-fe/pkg/log"
)

func main() {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		panic(err)
	}
	log.InitLogger(cfg.LogLevel)

	repo := file.NewReviewRepository(cfg.ReviewAPI.File)

	app := iris.New()
	server.RegisterReviewRoutes(app, repo)

	addr := cfg.ReviewAPI.Addr()
	zap.L().Info("review api listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zap.L().Fatal("review api exited", zap.Error(err))
	}
}
