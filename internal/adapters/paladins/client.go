package paladins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.paladins.com/paladinsapi.svc"
	DefaultFormat  = "Json"
	DefaultTimeout = 15 * time.Second
	DefaultRetries = 1
)

const (
	methodGetPlayer             = "getplayer"
	methodGetPlayerStatus       = "getplayerstatus"
	methodGetChampionRanks      = "getchampionranks"
	methodGetQueueStats         = "getqueuestats"
	methodGetMatchHistory       = "getmatchhistory"
	methodGetMatchDetails       = "getmatchdetails"
	methodGetMatchPlayerDetails = "getmatchplayerdetails"
)

type Config struct {
	Credentials  domain.Credentials
	BaseURL      string
	Format       string
	Timeout      time.Duration
	Retries      int
	HTTPClient   *http.Client
	Clock        ports.Clock
	SessionStore ports.SessionStore
	Recorder     ports.CallRecorder
	Logger       *zap.Logger
}

// Client is the typed API client. Every call obtains a verified session id and a
// fresh signature immediately before it is sent.
type Client struct {
	endpoint *endpoint
	sessions *SessionManager
	retries  int
}

var _ ports.StatsAPI = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	e := &endpoint{
		baseURL:    cfg.BaseURL,
		format:     cfg.Format,
		devID:      cfg.Credentials.DevID,
		signer:     NewSigner(cfg.Credentials),
		httpClient: cfg.HTTPClient,
		timeout:    cfg.Timeout,
		clock:      cfg.Clock,
		recorder:   cfg.Recorder,
		logger:     cfg.Logger,
	}
	if e.baseURL == "" {
		e.baseURL = DefaultBaseURL
	}
	if e.format == "" {
		e.format = DefaultFormat
	}
	if e.httpClient == nil {
		e.httpClient = http.DefaultClient
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	if e.clock == nil {
		e.clock = ports.SystemClock{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}

	return &Client{
		endpoint: e,
		sessions: newSessionManager(e, cfg.SessionStore),
		retries:  retries,
	}, nil
}

func (c *Client) Sessions() *SessionManager {
	return c.sessions
}

func (c *Client) GetPlayer(ctx context.Context, player string) (domain.Player, error) {
	players, err := fetchRecords[playerRecord, domain.Player](ctx, c, methodGetPlayer, player)
	if err != nil {
		return domain.Player{}, err
	}
	if len(players) == 0 {
		return domain.Player{}, fmt.Errorf("%w: player %q not found", domain.ErrEmptyResult, player)
	}

	return players[0], nil
}

func (c *Client) GetPlayerStatus(ctx context.Context, player string) (domain.PlayerStatus, error) {
	statuses, err := fetchRecords[playerStatusRecord, domain.PlayerStatus](ctx, c, methodGetPlayerStatus, player)
	if err != nil {
		return domain.PlayerStatus{}, err
	}
	if len(statuses) == 0 {
		return domain.PlayerStatus{}, fmt.Errorf("%w: no status for player %q", domain.ErrEmptyResult, player)
	}

	return statuses[0], nil
}

func (c *Client) GetChampionRanks(ctx context.Context, player string) ([]domain.ChampionStat, error) {
	return fetchRecords[championRankRecord, domain.ChampionStat](ctx, c, methodGetChampionRanks, player)
}

func (c *Client) GetQueueStats(ctx context.Context, player string, queueID int64) ([]domain.QueueStat, error) {
	stats, err := fetchRecords[queueStatRecord, domain.QueueStat](ctx, c, methodGetQueueStats, player, strconv.FormatInt(queueID, 10))
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].QueueID = queueID
	}

	return stats, nil
}

// GetMatchHistory returns the player's recent matches, most recent first. An empty
// history is not an error here; callers that need a match decide.
func (c *Client) GetMatchHistory(ctx context.Context, player string) ([]domain.MatchHistoryEntry, error) {
	return fetchRecords[matchHistoryRecord, domain.MatchHistoryEntry](ctx, c, methodGetMatchHistory, player)
}

func (c *Client) GetMatchDetails(ctx context.Context, matchID int64) ([]domain.MatchParticipant, error) {
	participants, err := fetchRecords[matchDetailRecord, domain.MatchParticipant](ctx, c, methodGetMatchDetails, strconv.FormatInt(matchID, 10))
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: no details for match %d", domain.ErrEmptyResult, matchID)
	}

	return participants, nil
}

func (c *Client) GetMatchPlayerDetails(ctx context.Context, matchID int64) ([]domain.RosterEntry, error) {
	roster, err := fetchRecords[rosterRecord, domain.RosterEntry](ctx, c, methodGetMatchPlayerDetails, strconv.FormatInt(matchID, 10))
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: no players for live match %d", domain.ErrEmptyResult, matchID)
	}

	return roster, nil
}

// call sends one request, retrying retryable failures with a new session check and signature.
func (c *Client) call(ctx context.Context, method string, args ...string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries+1; attempt++ {
		sessionID, err := c.sessions.ActiveSessionID(ctx)
		if err != nil {
			return nil, err
		}

		body, err := c.endpoint.get(ctx, request{method: method, sessionID: sessionID, args: args, attempt: attempt})
		if err == nil {
			return body, nil
		}
		lastErr = err

		var apiErr *APICallError
		if !errors.As(err, &apiErr) || !apiErr.Retryable || ctx.Err() != nil {
			return nil, err
		}
		if attempt <= c.retries {
			c.endpoint.logger.Warn("retrying api call",
				zap.String("method", method),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	return nil, lastErr
}

type wireRecord[T any] interface {
	present() bool
	message() string
	toDomain() (T, error)
}

func fetchRecords[R wireRecord[T], T any](ctx context.Context, c *Client, method string, args ...string) ([]T, error) {
	body, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	var records []R
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &APICallError{Method: method, Err: fmt.Errorf("decode records: %w", err)}
	}

	result := make([]T, 0, len(records))
	for _, record := range records {
		if !record.present() {
			if msg := record.message(); msg != "" {
				c.endpoint.logger.Debug("server message", zap.String("method", method), zap.String("ret_msg", msg))
			}
			continue
		}

		value, err := record.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		result = append(result, value)
	}

	return result, nil
}
