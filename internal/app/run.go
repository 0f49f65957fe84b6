package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	analysishttp "github.com/platelens/platelens/internal/adapters/in/http/analysis"
	"github.com/platelens/platelens/internal/adapters/in/http/middleware"
	"github.com/platelens/platelens/internal/adapters/out/telemetry"
	"github.com/platelens/platelens/internal/domain"
)

// ServiceName identifies the process in logs and telemetry.
const ServiceName = "platelens"

// googleAPIKeyEnv is the variable the Google SDKs read the API key from.
const googleAPIKeyEnv = "GOOGLE_API_KEY"

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port        int      `mapstructure:"port"`
		MaxUploadMB int64    `mapstructure:"max_upload_mb"`
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Gemini struct {
		APIKey          string        `mapstructure:"api_key"`
		Model           string        `mapstructure:"model"`
		BaseURL         string        `mapstructure:"base_url"`
		Timeout         time.Duration `mapstructure:"timeout"`
		Temperature     float64       `mapstructure:"temperature"`
		MaxOutputTokens int           `mapstructure:"max_output_tokens"`
	} `mapstructure:"gemini"`

	Image struct {
		JPEGQuality int   `mapstructure:"jpeg_quality"`
		MaxPixels   int64 `mapstructure:"max_pixels"`
	} `mapstructure:"image"`

	Prompt struct {
		StrictJSON         bool   `mapstructure:"strict_json"`
		DefaultServingSize string `mapstructure:"default_serving_size"`
		TemplatesDir       string `mapstructure:"templates_dir"` // overrides the embedded templates
	} `mapstructure:"prompt"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// PromptDefaults returns the prompt configuration used when a caller sets nothing.
func (c Config) PromptDefaults() domain.PromptConfiguration {
	cfg := domain.PromptConfiguration{StrictJSON: c.Prompt.StrictJSON}
	if c.Prompt.DefaultServingSize != "" {
		size := c.Prompt.DefaultServingSize
		cfg.DefaultServingSize = &size
	}
	return cfg
}

// MaxUploadBytes returns the upload body limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}

// Run starts the HTTP server and blocks until ctx is cancelled or a shutdown signal arrives.
func Run(ctx context.Context, configPath, version string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx = zerowrap.WithCtx(ctx, log)
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("version", version).
		Msg("starting platelens")

	_, shutdownTelemetry, err := telemetry.NewProvider(ctx, cfg.Telemetry, ServiceName, version, log)
	if err != nil {
		return log.WrapErr(err, "failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownTelemetry(shutdownCtx)
	}()

	svc, err := createServices(cfg, log)
	if err != nil {
		return err
	}

	return runServer(ctx, cfg, createHTTPHandler(svc, cfg, log), log)
}

// createHTTPHandler mounts the API routes behind the middleware chain.
func createHTTPHandler(svc *services, cfg Config, log zerowrap.Logger) http.Handler {
	mux := http.NewServeMux()
	analysishttp.NewHandler(svc.analysisSvc, analysishttp.Config{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Defaults:       cfg.PromptDefaults(),
	}, log).RegisterRoutes(mux)

	handler := middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log),
		middleware.SecurityHeaders,
		middleware.CORS(cfg.Server.CORSOrigins),
	)(mux)

	return otelhttp.NewHandler(handler, ServiceName)
}

// runServer serves handler until shutdown, then drains in-flight requests.
func runServer(ctx context.Context, cfg Config, handler http.Handler, log zerowrap.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// Inference can take most of the gemini timeout.
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Int("port", cfg.Server.Port).
			Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return log.WrapErr(err, "HTTP server failed")
		}
		return nil
	case <-ctx.Done():
		log.Info().Str(zerowrap.FieldLayer, "app").Msg("context cancelled, shutting down")
	case sig := <-quit:
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str("signal", sig.String()).
			Msg("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Str(zerowrap.FieldLayer, "app").Msg("platelens stopped")
	return nil
}

// initConfig loads configuration from file and environment.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		cfg.Gemini.APIKey = os.Getenv(googleAPIKeyEnv)
	}
	if cfg.Server.MaxUploadMB <= 0 {
		cfg.Server.MaxUploadMB = 10
	}

	return v, cfg, nil
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = "platelens.log"
		}

		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.timeout", "60s")
	v.SetDefault("gemini.temperature", 0.1)
	v.SetDefault("gemini.max_output_tokens", 2048)
	v.SetDefault("image.jpeg_quality", 75)
	v.SetDefault("image.max_pixels", 89478485)
	v.SetDefault("prompt.strict_json", true)
	v.SetDefault("prompt.default_serving_size", "")
	v.SetDefault("prompt.templates_dir", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PLATELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}
