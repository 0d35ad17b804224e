package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/orafinite/ecom-fe/internal/config"
	"github.com/orafinite/ecom-fe/internal/infra/cache"
	"github.com/orafinite/ecom-fe/internal/infra/reviewapi"
	"github.com/orafinite/ecom-fe/internal/repository/file"
	"github.com/orafinite/ecom-fe/internal/repository/memory"
	"github.com/orafinite/ecom-fe/internal/server"
	"github.com/orafinite/ecom-fe/internal/service"
	"github.com/orafinite/ecom-fe/pkg/log"
)

func main() {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		panic(err)
	}
	log.InitLogger(cfg.LogLevel)

	catalogRepo, err := file.NewCatalogRepository(cfg.Catalog.File)
	if err != nil {
		zap.L().Fatal("failed to load catalog", zap.String("file", cfg.Catalog.File), zap.Error(err))
	}

	reviewClient := reviewapi.NewClient(cfg.ReviewAPI.BaseURL)
	reviewCache := cache.New(cfg.ReviewCache.File)

	deps := server.Deps{
		Catalog:  service.NewCatalogService(catalogRepo),
		Carts:    service.NewCartService(),
		Reviews:  service.NewReviewService(reviewClient, reviewCache, cfg.ReviewCache.BundledFile),
		Orders:   service.NewOrderService(memory.NewOrderRepository()),
		Sessions: sessions.New(sessions.Config{Cookie: "sessioncookie", Expires: 24 * time.Hour}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// warm the review list through the fallback chain before serving
	loaded := deps.Reviews.Load(ctx)
	zap.L().Info("reviews loaded", zap.Int("count", len(loaded)))

	app := iris.New()
	server.RegisterRoutes(app, deps)

	addr := cfg.Server.Addr()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("storefront listening", zap.String("addr", addr))
		return app.Listen(addr,
			iris.WithoutInterruptHandler,
			iris.WithoutServerError(iris.ErrServerClosed),
		)
	})
	g.Go(func() error {
		err := catalogRepo.Watch(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.L().Fatal("storefront exited", zap.Error(err))
	}
}
