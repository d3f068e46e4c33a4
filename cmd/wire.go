package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	csvexport "github.com/bnema/paladins-stats-cli/internal/adapters/export/csv"
	"github.com/bnema/paladins-stats-cli/internal/adapters/paladins"
	sqliterepo "github.com/bnema/paladins-stats-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/paladins-stats-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/paladins-stats-cli/internal/adapters/secrets/chain"
	"github.com/bnema/paladins-stats-cli/internal/application"
	"github.com/bnema/paladins-stats-cli/internal/config"
	"github.com/bnema/paladins-stats-cli/internal/logging"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg         config.Config
	logger      *zap.Logger
	logLevel    zap.AtomicLevel
	credentials *application.CredentialsService
	sessions    *tomlrepo.SessionStore
	callLog     ports.CallLog
	closeLog    func() error
	exporter    *csvexport.Exporter
	httpClient  *http.Client
	clock       ports.Clock

	clientOnce sync.Once
	client     *paladins.Client
	clientErr  error
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, level, err := logging.New(cfg.LogLevel, nil)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	sessions, err := tomlrepo.NewSessionStore(v)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	clock := ports.SystemClock{}
	a := &app{
		cfg:         cfg,
		logger:      logger,
		logLevel:    level,
		credentials: application.NewCredentialsService(secretStore, cfg.Credentials.DevIDRef, cfg.Credentials.AuthKeyRef),
		sessions:    sessions,
		closeLog:    func() error { return nil },
		exporter:    csvexport.NewExporter(cfg.ExportDir, clock),
		httpClient:  http.DefaultClient,
		clock:       clock,
	}

	callLog, err := sqliterepo.NewCallLogFromConfig(v)
	switch {
	case errors.Is(err, sqliterepo.ErrDisabled):
		logger.Debug("api call log disabled")
	case err != nil:
		return nil, fmt.Errorf("wire call log: %w", err)
	default:
		a.callLog = callLog
		a.closeLog = callLog.Close
	}

	return a, nil
}

// statsClient builds the API client on first use. Credentials are only
// required by commands that talk to the server.
func (a *app) statsClient(ctx context.Context) (*paladins.Client, error) {
	a.clientOnce.Do(func() {
		creds, err := a.credentials.Load(ctx)
		if err != nil {
			a.clientErr = err
			return
		}

		clientCfg := paladins.Config{
			Credentials:  creds,
			BaseURL:      a.cfg.API.BaseURL,
			Format:       a.cfg.API.Format,
			Timeout:      a.cfg.API.Timeout,
			Retries:      a.cfg.API.Retries,
			HTTPClient:   a.httpClient,
			Clock:        a.clock,
			SessionStore: a.sessions,
			Logger:       a.logger,
		}
		if a.callLog != nil {
			clientCfg.Recorder = a.callLog
		}

		a.client, a.clientErr = paladins.NewClient(clientCfg)
	})

	return a.client, a.clientErr
}

func (a *app) reportService(ctx context.Context) (*application.ReportService, error) {
	client, err := a.statsClient(ctx)
	if err != nil {
		return nil, err
	}

	return application.NewReportService(client, a.logger), nil
}

func (a *app) snapshotService(ctx context.Context) (*application.SnapshotService, error) {
	client, err := a.statsClient(ctx)
	if err != nil {
		return nil, err
	}

	return application.NewSnapshotService(client), nil
}
