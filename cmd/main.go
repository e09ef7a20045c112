package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizzeria-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizzeria-api/internal/auth"
	"github.com/franciscosanchezn/pizzeria-api/internal/config"
	"github.com/franciscosanchezn/pizzeria-api/internal/controllers"
	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/metrics"
	"github.com/franciscosanchezn/pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/notification"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/franciscosanchezn/pizzeria-api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// routerDeps are the collaborators the HTTP router needs
type routerDeps struct {
	db             *gorm.DB
	jwtSecret      string
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	notifier       notification.Gateway
	tracing        bool
}

// @title Pizzeria API
// @version 1.0
// @description Pizzeria menu catalog: paginated queries, searches and price updates
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, telemetry.Config{
		Enabled:     configuration.OTelEnabled,
		Endpoint:    configuration.OTelEndpoint,
		SampleRatio: configuration.OTelSampleRatio,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to setup tracing, continuing without it")
		shutdownTracing = func(context.Context) error { return nil }
	}

	// Initialize database connection
	db := setupDatabase(ctx, configuration)

	notifier, err := notification.New(notification.Config{
		Driver:       configuration.NotifierDriver,
		KafkaBrokers: configuration.KafkaBrokers,
		KafkaTopic:   configuration.KafkaPriceTopic,
	})
	checkPanicErr(err)

	router := setupRouter(routerDeps{
		db:             db,
		jwtSecret:      configuration.JWTSecret,
		metrics:        metrics.New(),
		metricsHandler: promhttp.Handler(),
		notifier:       notifier,
		tracing:        configuration.OTelEnabled,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if closer, ok := notifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.WithError(err).Warn("Failed to close notifier")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level
// from APP_ENV, letting an explicit LOG_LEVEL win
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			log.WithField("log_level", raw).Warn("Ignoring invalid LOG_LEVEL")
			return
		}
		log.SetLevel(level)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds an empty catalog
func setupDatabase(ctx context.Context, conf *config.Config) *gorm.DB {
	db, err := database.Connect(ctx, conf.Database(), database.DefaultRetry)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	seed, err := database.LoadSeed(conf.SeedFile)
	checkPanicErr(err)
	_, err = database.Seed(db, seed, false)
	checkPanicErr(err)
	return db
}

// setupRouter initializes the Gin router, wires services and controllers and sets up the routes
func setupRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if deps.tracing {
		router.Use(otelgin.Middleware(telemetry.ServiceName))
	}
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics(deps.metrics))

	pizzaRepo := repository.NewPizzaRepository(deps.db)
	pizzaController := controllers.NewPizzaController(
		services.NewPizzaCatalog(pizzaRepo),
		services.NewPriceUpdater(pizzaRepo, deps.notifier, deps.metrics),
	)
	customerController := controllers.NewCustomerController(
		services.NewCustomerService(repository.NewCustomerRepository(deps.db)),
	)
	healthController := controllers.NewHealthController(telemetry.ServiceName, func(ctx context.Context) error {
		return database.Ping(ctx, deps.db)
	})
	oauthService := auth.NewOAuthService(deps.db, deps.jwtSecret)

	setupRoutes(router, deps, pizzaController, customerController, healthController, oauthService)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(
	router *gin.Engine,
	deps routerDeps,
	pizzas controllers.PizzaController,
	customers controllers.CustomerController,
	health controllers.HealthController,
	oauthService *auth.OAuthService,
) {
	router.GET("/health", health.Check)
	router.GET("/metrics", gin.WrapH(deps.metricsHandler))
	router.POST("/oauth/token", oauthService.HandleToken)

	// Every catalog route needs a bearer token; mutations need the admin role
	api := router.Group("/api")
	api.Use(middleware.OAuth2Auth([]byte(deps.jwtSecret)))
	{
		api.GET("/pizzas", pizzas.GetPizzaPage)
		api.GET("/pizzas/all", pizzas.GetAllPizzas)
		api.GET("/pizzas/available-page", pizzas.GetAvailablePizzaPage)
		api.GET("/pizzas/available/:available", pizzas.GetPizzasByAvailability)
		api.GET("/pizzas/name/:name", pizzas.GetPizzaByName)
		api.GET("/pizzas/search", pizzas.SearchPizzas)
		api.GET("/pizzas/with/:ingredient", pizzas.GetPizzasWith)
		api.GET("/pizzas/without/:ingredient", pizzas.GetPizzasWithout)
		api.GET("/pizzas/cheapest/:price", pizzas.GetCheapestPizzas)
		api.GET("/pizzas/:id", pizzas.GetPizzaByID)
		api.GET("/customers/phone/:phone", customers.GetCustomerByPhone)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/pizzas", pizzas.CreatePizza)
			admin.PUT("/pizzas", pizzas.UpdatePizza)
			admin.PUT("/pizzas/price", pizzas.UpdatePrice)
			admin.DELETE("/pizzas/:id", pizzas.DeletePizza)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
