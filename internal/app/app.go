package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/controller"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/gateway"
	circuitbreaker "github.com/amusetravel-BackEnd/amuseAdmin/internal/infrastructure/circuit-breaker"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/infrastructure/message-queue/kafka"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/infrastructure/tracing"
	localmiddleware "github.com/amusetravel-BackEnd/amuseAdmin/internal/middleware"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/repository"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/service"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/httpclient"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	segmentio "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config    *config.Config
	Server    *echo.Echo
	Metrics   *echo.Echo
	Scheduler gocron.Scheduler

	registry       *prometheus.Registry
	tracerProvider *trace.TracerProvider
	kafkaWriter    *segmentio.Writer
}

// Router wires every component and returns the HTTP handler without listening. The sweep
// job is registered but the scheduler is only started by Start.
func (app *App) Router() (*echo.Echo, error) {
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return nil, err
	}
	app.tracerProvider = traceProvider

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(localmiddleware.Tracing(traceProvider.Tracer(tracing.ServiceName)))

	// Each App owns its registry so several instances can live in one process
	app.registry = prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: app.registry,
	}))

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	cb := circuitbreaker.CreateCircuitBreaker("amuse-admin-backend", gateway.IsSuccessful)
	client := httpclient.NewClient(app.Config.BackendConfig.Timeout)
	remoteGateway := gateway.CreateRemoteGateway(client, cb, app.Config.BackendConfig)

	imageEncoder := encoder.NewEncoder(app.Config.ImageConfig)
	formRepo := repository.CreateMemoryFormRepository()

	var publisher service.EventPublisher
	app.kafkaWriter = kafka.CreateKafkaWriter(app.Config)
	if app.kafkaWriter != nil {
		publisher = app.kafkaWriter
	}

	formSvc := service.CreateFormService(formRepo, remoteGateway, imageEncoder, publisher, app.Config)
	guideSvc := service.CreateGuideService(imageEncoder)
	componentSvc := service.CreateComponentService(remoteGateway)

	controller.CreateFormController(g, formSvc)
	controller.CreateGuideController(g, guideSvc)
	controller.CreateComponentController(g, componentSvc)

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	if app.Config.FormConfig.SweepInterval > 0 {
		_, err = s.NewJob(
			gocron.DurationJob(
				app.Config.FormConfig.SweepInterval,
			),
			gocron.NewTask(
				func() {
					formSvc.SweepIdleForms(log.Logger.WithContext(context.Background()))
				},
			),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("registering form sweep job: %w", err)
		}
	}
	app.Scheduler = s

	app.Server = e
	return e, nil
}

func (app *App) Start() error {
	e, err := app.Router()
	if err != nil {
		return err
	}

	app.Scheduler.Start()

	app.Metrics = echo.New()
	app.Metrics.HideBanner = true
	app.Metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: app.registry}))
	go func() {
		if err := app.Metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("port", app.Config.ServicePort).Str("backend", app.Config.BackendConfig.Host).Msg("starting server")
	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error
	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.Metrics != nil {
		errList = append(errList, app.Metrics.Shutdown(ctx))
	}
	if app.Scheduler != nil {
		errList = append(errList, app.Scheduler.Shutdown())
	}
	if app.kafkaWriter != nil {
		errList = append(errList, app.kafkaWriter.Close())
	}
	if app.tracerProvider != nil {
		errList = append(errList, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}
