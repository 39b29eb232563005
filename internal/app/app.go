package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/authclient"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/notifier"
	"github.com/niksmo/storefront/internal/adapter/snapshot"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	shopEvent schema.Serde
}

type outbound struct {
	snapshots    snapshot.Storage
	authProvider authclient.Client
	events       kafka.ShopEventsProducer
	sqlDB        storage.SQLDB
	orders       storage.OrdersRepository
	activityProc *kafka.ActivityProcessor
	activityView kafka.ActivityView
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	wg         sync.WaitGroup
	serdes     serdes
	outbound   outbound
	shop       *service.Shop
	httpServer httphandler.HTTPServer
}

func New(context context.Context, config config.Config) *App {
	app := &App{ctx: context, cfg: config}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	shopEventSS := app.cfg.Broker.Topics.ShopEvents + "-value"
	shopEventSerde, err := schema.NewSerdeShopEventV1(
		ctx,
		schema.SubjectOpt(shopEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.shopEvent = shopEventSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	shopEventsTopic := app.cfg.Broker.Topics.ShopEvents

	snapshots, err := snapshot.New(ctx, app.cfg.RedisURL)
	if err != nil {
		app.fallDown(op, err)
	}

	eventsProducer, err := kafka.NewShopEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, shopEventsTopic),
		kafka.ProducerEncoderOpt(app.serdes.shopEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	sqlDB, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	activityProc, err := kafka.NewActivityProc(
		seedBrokers,
		shopEventsTopic,
		app.cfg.Broker.Consumers.ActivityGroup,
		app.serdes.shopEvent,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	activityView, err := kafka.NewActivityView(
		seedBrokers, app.cfg.Broker.Consumers.ActivityGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.outbound.snapshots = snapshots
	app.outbound.authProvider = authclient.New(
		app.cfg.Auth.BaseURL, app.cfg.Auth.Timeout,
	)
	app.outbound.events = eventsProducer
	app.outbound.sqlDB = sqlDB
	app.outbound.orders = storage.NewOrdersRepository(sqlDB)
	app.outbound.activityProc = activityProc
	app.outbound.activityView = activityView
}

func (app *App) initCoreService() {
	app.shop = service.New(
		domain.SampleCatalog(),
		notifier.New(),
		app.outbound.snapshots,
		app.outbound.authProvider,
		app.outbound.events,
		app.outbound.orders,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.shop)
	httphandler.RegisterCart(mux, app.shop, app.shop)
	httphandler.RegisterWishlist(mux, app.shop, app.shop)
	httphandler.RegisterAuth(mux, app.shop)
	httphandler.RegisterOrders(mux, app.shop)
	httphandler.RegisterActivity(mux, app.outbound.activityView)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.shop.Restore(app.ctx)

	app.wg.Add(1)
	go app.outbound.activityProc.Run(app.ctx, stopFn, &app.wg)
	go app.outbound.activityView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.activityProc.Close()
	app.wg.Wait()
	app.outbound.events.Close()
	app.outbound.snapshots.Close()
	app.outbound.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
