package paladins

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	methodCreateSession = "createsession"
	methodTestSession   = "testsession"

	sessionTestSuccessPrefix = `"This was a successful test`
)

type createSessionResponse struct {
	RetMsg    string `json:"ret_msg"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// SessionManager owns the one session id every call is made with. The id is
// only handed out after the server confirmed it is still valid.
type SessionManager struct {
	endpoint *endpoint
	store    ports.SessionStore

	mu      sync.Mutex
	current string
	loaded  bool
}

func newSessionManager(e *endpoint, store ports.SessionStore) *SessionManager {
	return &SessionManager{endpoint: e, store: store}
}

// ActiveSessionID returns a session id the server just confirmed, creating a
// new session when the current one is missing or expired.
func (m *SessionManager) ActiveSessionID(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadLocked(ctx)

	if m.current != "" && m.TestSession(ctx, m.current) {
		return m.current, nil
	}

	return m.createLocked(ctx)
}

func (m *SessionManager) CreateSession(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createLocked(ctx)
}

// TestSession reports whether the server still accepts sessionID. Any failure
// counts as invalid.
func (m *SessionManager) TestSession(ctx context.Context, sessionID string) bool {
	if strings.TrimSpace(sessionID) == "" {
		return false
	}

	body, err := m.endpoint.get(ctx, request{method: methodTestSession, sessionID: sessionID, attempt: 1})
	if err != nil {
		return false
	}

	return bytes.HasPrefix(bytes.TrimSpace(body), []byte(sessionTestSuccessPrefix))
}

func (m *SessionManager) createLocked(ctx context.Context) (string, error) {
	body, err := m.endpoint.get(ctx, request{method: methodCreateSession, attempt: 1})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionCreation, err)
	}

	var payload createSessionResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrSessionCreation, err)
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		return "", fmt.Errorf("%w: response has no session id (ret_msg %q)", domain.ErrSessionCreation, payload.RetMsg)
	}

	m.current = payload.SessionID
	m.endpoint.logger.Info("created api session")
	m.persistLocked(ctx)

	return m.current, nil
}

func (m *SessionManager) loadLocked(ctx context.Context) {
	if m.loaded || m.store == nil {
		return
	}
	m.loaded = true

	stored, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			m.endpoint.logger.Warn("load stored session", zap.Error(err))
		}
		return
	}
	if stored.DevID != m.endpoint.devID {
		return
	}

	if m.current == "" {
		m.current = stored.ID
		m.endpoint.logger.Debug("reusing stored api session")
	}
}

func (m *SessionManager) persistLocked(ctx context.Context) {
	if m.store == nil {
		return
	}

	err := m.store.Save(ctx, domain.StoredSession{
		ID:        m.current,
		DevID:     m.endpoint.devID,
		CreatedAt: m.endpoint.clock.Now().UTC(),
	})
	if err != nil {
		m.endpoint.logger.Warn("save api session", zap.Error(err))
	}
}
