// cmd/local-library-web/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	v1 "github.com/mikescor/local-library/internal/api/web/v1"
	"github.com/mikescor/local-library/internal/app"
	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/config"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/web-app.yaml"
	}

	webConfig, err := config.InitializeWebConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&webConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(webConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(webConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	summary catalog.SummaryService
	book    catalog.BookService
	author  catalog.AuthorService
	loan    catalog.LoanService
	account accounts.AccountService
}

// initializeServices sets up the persistence layer and the application
// services on top of it
func initializeServices(cfg *config.WebConfig, log logger.Logger) (*appServices, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	authorRepo, err := persistence.NewGormAuthorRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create author repository: %w", err)
	}
	genreRepo, err := persistence.NewGormGenreRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre repository: %w", err)
	}
	bookRepo, err := persistence.NewGormBookRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create book repository: %w", err)
	}
	instanceRepo, err := persistence.NewGormBookInstanceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance repository: %w", err)
	}
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	// Initialize services
	summaryService, err := app.NewSummaryService(bookRepo, authorRepo, genreRepo, instanceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}
	bookService, err := app.NewBookService(bookRepo, genreRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create book service: %w", err)
	}
	authorService, err := app.NewAuthorService(authorRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}
	loanService, err := app.NewLoanService(instanceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create loan service: %w", err)
	}
	accountService, err := app.NewAccountService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		summary: summaryService,
		book:    bookService,
		author:  authorService,
		loan:    loanService,
		account: accountService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.WebConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	allowedOrigins := cfg.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie sessions carry the login and the visit counter
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))

	// Setup page rendering and routes
	r.SetHTMLTemplate(v1.HTMLTemplates())
	v1.SetupRoutes(r,
		services.summary,
		services.book,
		services.author,
		services.loan,
		services.account,
		log,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
