package paladins

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// endpoint issues signed GET requests. It is shared by the session manager and the client.
type endpoint struct {
	baseURL    string
	format     string
	devID      string
	signer     Signer
	httpClient *http.Client
	timeout    time.Duration
	clock      ports.Clock
	recorder   ports.CallRecorder
	logger     *zap.Logger
}

type request struct {
	method    string
	sessionID string
	args      []string
	attempt   int
}

// url builds {base}/{method}{format}/{dev}/{signature}[/{session}]/{timestamp}[/{args}...].
func (e *endpoint) url(method, signature, sessionID, timestamp string, args ...string) string {
	segments := []string{method + e.format, e.devID, signature}
	if sessionID != "" {
		segments = append(segments, url.PathEscape(sessionID))
	}
	segments = append(segments, timestamp)
	for _, arg := range args {
		segments = append(segments, url.PathEscape(arg))
	}

	return strings.TrimRight(e.baseURL, "/") + "/" + strings.Join(segments, "/")
}

func (e *endpoint) get(ctx context.Context, req request) ([]byte, error) {
	timestamp := Timestamp(e.clock.Now())
	endpointURL := e.url(req.method, e.signer.Sign(req.method, timestamp), req.sessionID, timestamp, req.args...)

	started := time.Now()
	body, status, err := e.do(ctx, req.method, endpointURL)
	e.record(ctx, req, status, time.Since(started), err)

	return body, err
}

func (e *endpoint) do(ctx context.Context, method, endpointURL string) ([]byte, int, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, 0, &APICallError{Method: method, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "pstats")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, &APICallError{
			Method:    method,
			Retryable: ctx.Err() == nil && isTimeout(err),
			Err:       fmt.Errorf("perform request: %w", stripURL(err)),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, &APICallError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Retryable:  ctx.Err() == nil && isTimeout(err),
			Err:        fmt.Errorf("read response: %w", stripURL(err)),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &APICallError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Retryable:  resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
			Err:        errors.New(truncate(strings.TrimSpace(string(body)), 200)),
		}
	}

	return body, resp.StatusCode, nil
}

func (e *endpoint) record(ctx context.Context, req request, status int, took time.Duration, callErr error) {
	if callErr != nil {
		e.logger.Debug("api call failed",
			zap.String("method", req.method),
			zap.Int("status", status),
			zap.Int("attempt", req.attempt),
			zap.Error(callErr),
		)
	}

	if e.recorder == nil {
		return
	}

	call := domain.APICall{
		Timestamp:  e.clock.Now(),
		Method:     req.method,
		StatusCode: status,
		Duration:   took,
		Attempt:    req.attempt,
	}
	if len(req.args) > 0 {
		call.EntityID = req.args[0]
	}
	if callErr != nil {
		call.Error = callErr.Error()
	}

	if err := e.recorder.RecordCall(context.WithoutCancel(ctx), call); err != nil {
		e.logger.Warn("record api call", zap.String("method", req.method), zap.Error(err))
	}
}

// stripURL drops the request URL from transport errors; it carries the signature and session id.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
