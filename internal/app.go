package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "github.com/KevinMolina1996/realestate-front/internal/adapters/logger"
	"github.com/KevinMolina1996/realestate-front/internal/adapters/properties_api_client"
	"github.com/KevinMolina1996/realestate-front/internal/adapters/web"
	"github.com/KevinMolina1996/realestate-front/internal/configs"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
	"github.com/KevinMolina1996/realestate-front/internal/core/usecase"
	fluentlogger "github.com/KevinMolina1996/realestate-front/pkg/fluent_logger"
)

const shutdownTimeout = 10 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	webServer    *web.Server
	properties   *web.PropertiesHandler
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Здесь все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. КЛИЕНТ PROPERTIES API И USE CASES ---
	apiClient, err := properties_api_client.NewClient(appConfig.ApiClient.PROPERTIES_URL)
	if err != nil {
		appLogger.Error("Failed to create properties API client", err, nil)
		return nil, err
	}
	apiURL, _ := url.Parse(appConfig.ApiClient.PROPERTIES_URL)

	listUC := usecase.NewListPropertiesUseCase(apiClient)
	detailsUC := usecase.NewGetPropertyDetailsUseCase(apiClient)
	createUC := usecase.NewCreatePropertyUseCase(apiClient)
	updateUC := usecase.NewUpdatePropertyUseCase(apiClient)
	appLogger.Info("Use cases initialized.", port.Fields{"properties_api_url": appConfig.ApiClient.PROPERTIES_URL})

	// --- 3. WEB ---
	renderer, err := web.NewRenderer(appConfig.Web.PrettyHTML)
	if err != nil {
		appLogger.Error("Failed to parse templates", err, nil)
		return nil, err
	}

	properties := web.NewPropertiesHandler(listUC, detailsUC, createUC, updateUC, renderer, web.HandlerOptions{
		MaxImageBytes: appConfig.Web.MaxImageBytes,
		DraftTTL:      appConfig.Web.DraftTTL,
	})

	webServer := web.NewServer(web.ServerConfig{
		Port:               appConfig.Rest.PORT,
		PropertiesAPIURL:   apiURL,
		CORSAllowedOrigins: appConfig.Web.CORSAllowedOrigins,
	}, properties, baseLogger)
	appLogger.Info("Web server configured.", nil)

	return &App{
		config:       appConfig,
		webServer:    webServer,
		properties:   properties,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает компоненты приложения и ждет сигнала на завершение.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.webServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error during web server shutdown", err, nil)
		}

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.properties.RunDraftJanitor(appCtx, a.config.Web.DraftTTL/2, a.logger)
		a.logger.Info("Draft janitor stopped.", nil)
	}()

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.webServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	cancelApp()
	return runErr
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
