package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dronemeds/config"
	httpapi "dronemeds/storefront-svc/internal/api/http"
	"dronemeds/storefront-svc/internal/recommend"
	"dronemeds/storefront-svc/internal/service"
	"dronemeds/storefront-svc/internal/storage"
)

func main() {
	logger := config.InitLogger("storefront-svc")
	settings := config.Load()

	products, err := storage.LoadCatalog(settings.CatalogPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load catalog")
	}
	logger.WithField("products", len(products)).Info("catalog loaded")

	var (
		popularity service.PopularityStore
		geoCache   service.LocationCache
		repo       service.OrderRepository
		publisher  service.OrderPublisher
	)

	if settings.PostgresEnabled() {
		db := config.MustInitPostgres(settings)
		defer db.Close()
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			logger.WithError(err).Fatal("Failed to prepare orders table")
		}
		repo = pg
	}

	if settings.RedisEnabled() {
		rdb := config.MustInitRedis(settings)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb, 6*time.Hour)
		popularity = cache
		geoCache = cache
	}

	if settings.KafkaEnabled() {
		writer := config.NewKafkaWriter(settings)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	catalog := service.NewCatalogService(products, recommend.New(products), popularity, settings.RecommendLimit)
	payments := service.PaymentQRGenerator{
		UPIID:     settings.UPIID,
		PayeeName: settings.PayeeName,
		Size:      settings.QRSize,
	}
	orders := service.NewOrderService(catalog, storage.NewCSVOrderLog(settings.OrderLogPath), repo, publisher, payments)
	locator := service.NewHTTPLocator(settings.GeoIPURL, &http.Client{Timeout: 5 * time.Second})
	location := service.NewLocationService(locator, geoCache)

	handler := httpapi.NewHandler(catalog, orders, location)
	srv := httpapi.NewServer(":"+settings.Port, httpapi.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.StartServer(ctx, srv, 10*time.Second); err != nil {
		logger.WithError(err).Fatal("Storefront Service stopped")
	}
}
