// Package sqlite keeps a local log of the api calls made by the client.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/spf13/viper"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

const (
	CallLogPathKey  = "calllog.path"
	callLogDirMode  = 0o700
	callLogDir      = ".paladins"
	callLogFile     = "calls.db"
	timestampLayout = time.RFC3339Nano
)

type CallLog struct {
	db   *sql.DB
	path string
}

var _ ports.CallLog = (*CallLog)(nil)

// ErrDisabled is returned by NewCallLogFromConfig when calllog.path is set to an empty string.
var ErrDisabled = errors.New("call log disabled")

func NewCallLogFromConfig(cfg *viper.Viper) (*CallLog, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(CallLogPathKey, filepath.Join(homeDir, callLogDir, callLogFile))

	path := strings.TrimSpace(cfg.GetString(CallLogPathKey))
	if path == "" {
		return nil, ErrDisabled
	}

	return NewCallLog(path)
}

func NewCallLog(path string) (*CallLog, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, callLogDirMode); err != nil {
			return nil, fmt.Errorf("create call log directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open call log: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect call log: %w", err)
	}

	log := &CallLog{db: db, path: path}
	if err := log.configure(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := log.createSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return log, nil
}

func (l *CallLog) Path() string {
	return l.path
}

func (l *CallLog) Close() error {
	return l.db.Close()
}

func (l *CallLog) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := l.db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (l *CallLog) createSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS api_calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		method TEXT NOT NULL,
		entity_id TEXT,
		status_code INTEGER DEFAULT 0,
		duration_ms INTEGER DEFAULT 0,
		attempt INTEGER DEFAULT 1,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_api_calls_timestamp ON api_calls(timestamp);
	CREATE INDEX IF NOT EXISTS idx_api_calls_method ON api_calls(method);
	`
	if _, err := l.db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("create call log schema: %w", err)
	}

	return nil
}

func (l *CallLog) RecordCall(ctx context.Context, call domain.APICall) error {
	timestamp := call.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	attempt := call.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO api_calls (timestamp, method, entity_id, status_code, duration_ms, attempt, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		timestamp.UTC().Format(timestampLayout),
		call.Method,
		nullString(call.EntityID),
		call.StatusCode,
		call.Duration.Milliseconds(),
		attempt,
		nullString(call.Error),
	)
	if err != nil {
		return fmt.Errorf("insert api call: %w", err)
	}

	return nil
}

// RecentCalls returns up to limit calls, newest first.
func (l *CallLog) RecentCalls(ctx context.Context, limit int) ([]domain.APICall, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, timestamp, method, entity_id, status_code, duration_ms, attempt, error
		FROM api_calls
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent api calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var calls []domain.APICall
	for rows.Next() {
		var (
			call       domain.APICall
			timestamp  string
			durationMS int64
			entityID   sql.NullString
			errText    sql.NullString
		)
		if err := rows.Scan(&call.ID, &timestamp, &call.Method, &entityID, &call.StatusCode, &durationMS, &call.Attempt, &errText); err != nil {
			return nil, fmt.Errorf("scan api call: %w", err)
		}

		call.Timestamp, err = time.Parse(timestampLayout, timestamp)
		if err != nil {
			return nil, fmt.Errorf("parse api call timestamp %q: %w", timestamp, err)
		}
		call.Duration = time.Duration(durationMS) * time.Millisecond
		call.EntityID = entityID.String
		call.Error = errText.String
		calls = append(calls, call)
	}

	return calls, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
