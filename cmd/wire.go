package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bnema/xthreads-cli/internal/adapters/files/vault"
	promadapter "github.com/bnema/xthreads-cli/internal/adapters/metrics/prom"
	"github.com/bnema/xthreads-cli/internal/adapters/posting/mastodon"
	statusadapter "github.com/bnema/xthreads-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/xthreads-cli/internal/adapters/repo/toml"
	"github.com/bnema/xthreads-cli/internal/adapters/scheduler/httpapi"
	chainstore "github.com/bnema/xthreads-cli/internal/adapters/secrets/chain"
	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/config"
	"github.com/bnema/xthreads-cli/internal/logging"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const httpTimeout = 30 * time.Second

type app struct {
	cfg            *viper.Viper
	log            zerolog.Logger
	reporter       *logging.Reporter
	service        *application.Service
	connections    *application.ConnectionManager
	poster         *application.ThreadPoster
	composer       *application.ComposeService
	files          ports.FileStore
	metrics        *promadapter.Collector
	statusRenderer func([]application.Status, statusadapter.RenderOptions) (string, error)
	draftRenderer  func(application.Draft, statusadapter.RenderOptions) (string, error)
	staleAfter     time.Duration
	now            func() time.Time
}

func wireApp() (*app, error) {
	fsys := afero.NewOsFs()

	cfg, err := config.Load(config.Options{Fs: fsys, EnvFile: ".env"})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.GetString(config.KeyLogLevel), os.Stderr)

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	history, err := tomlrepo.NewHistoryRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire post history: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(fsys, cfg.GetString(config.KeySecretsDir), log)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	httpClient := &http.Client{Timeout: httpTimeout}

	var scheduler ports.Scheduler
	if url := cfg.GetString(config.KeySchedulerURL); url != "" {
		client, err := httpapi.NewClient(url, cfg.GetString(config.KeySchedulerToken), httpClient)
		if err != nil {
			return nil, fmt.Errorf("wire scheduler client: %w", err)
		}
		scheduler = client
	}

	metrics := promadapter.NewCollector(prometheus.NewRegistry())
	files := vault.NewStore(fsys, cfg.GetString(config.KeyVaultRoot))
	postingClient := mastodon.NewClient(mastodon.Config{
		HTTPClient:       httpClient,
		UploadsPerMinute: cfg.GetInt(config.KeyUploadsPerMinute),
	}, log)

	clock := ports.SystemClock{}
	connections := application.NewConnectionManager(repo, secretStore, postingClient, metrics, clock, log)
	resolver := application.NewMediaResolver(files, metrics, log)
	poster := application.NewThreadPoster(connections, resolver, history, metrics, clock, log)

	return &app{
		cfg:            cfg,
		log:            log,
		reporter:       logging.NewReporter(log),
		service:        application.NewService(repo, secretStore),
		connections:    connections,
		poster:         poster,
		composer:       application.NewComposeService(connections, poster, scheduler, clock),
		files:          files,
		metrics:        metrics,
		statusRenderer: statusadapter.Render,
		draftRenderer:  statusadapter.RenderDraft,
		staleAfter:     cfg.GetDuration(config.KeyStaleAfter),
		now:            time.Now,
	}, nil
}

// flushMetrics writes the textfile when one is configured.
func (a *app) flushMetrics() {
	path := a.cfg.GetString(config.KeyMetricsTextfile)
	if path == "" {
		return
	}

	if err := a.metrics.WriteTextfile(path); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
	}
}
