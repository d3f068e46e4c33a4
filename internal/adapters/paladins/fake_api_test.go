package paladins

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testCreds = domain.Credentials{DevID: "1004", AuthKey: "TESTKEY"}

// apiRequest is a parsed request path of the fake server.
type apiRequest struct {
	Method    string
	DevID     string
	Signature string
	SessionID string
	Timestamp string
	Args      []string
}

type fakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	requests  []apiRequest
	sessions  int
	validIDs  map[string]bool
	responses map[string]func(w http.ResponseWriter, req apiRequest)
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{
		t:         t,
		validIDs:  map[string]bool{},
		responses: map[string]func(http.ResponseWriter, apiRequest){},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	segments := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	req := apiRequest{
		Method:    strings.TrimSuffix(segments[0], "Json"),
		DevID:     segments[1],
		Signature: segments[2],
	}
	switch req.Method {
	case methodCreateSession:
		req.Timestamp = segments[3]
	default:
		req.SessionID = segments[3]
		req.Timestamp = segments[4]
		req.Args = segments[5:]
	}

	sum := md5.Sum([]byte(testCreds.DevID + req.Method + testCreds.AuthKey + req.Timestamp))
	assert.Equal(f.t, hex.EncodeToString(sum[:]), req.Signature, "signature for %s", req.Method)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	handler := f.responses[req.Method]
	f.mu.Unlock()

	switch {
	case handler != nil:
		handler(w, req)
	case req.Method == methodCreateSession:
		f.mu.Lock()
		f.sessions++
		id := "session-" + strconv.Itoa(f.sessions)
		f.validIDs[id] = true
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ret_msg":"Approved","session_id":"` + id + `","timestamp":"1/1/2024 12:00:00 PM"}`))
	case req.Method == methodTestSession:
		f.mu.Lock()
		valid := f.validIDs[req.SessionID]
		f.mu.Unlock()
		if valid {
			_, _ = w.Write([]byte(`"This was a successful test with the following parameters added: developer: 1004"`))
			return
		}
		_, _ = w.Write([]byte(`"Invalid session id."`))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) respond(method string, handler func(w http.ResponseWriter, req apiRequest)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method] = handler
}

func (f *fakeAPI) respondJSON(method, body string) {
	f.respond(method, func(w http.ResponseWriter, _ apiRequest) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeAPI) expire(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.validIDs, sessionID)
}

func (f *fakeAPI) sessionsCreated() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions
}

func (f *fakeAPI) calls(method string) []apiRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []apiRequest
	for _, req := range f.requests {
		if req.Method == method {
			matched = append(matched, req)
		}
	}
	return matched
}

// tickingClock advances one second on every reading so consecutive calls get distinct timestamps.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestClient(t *testing.T, api *fakeAPI, mutate ...func(*Config)) *Client {
	t.Helper()

	cfg := Config{
		Credentials: testCreds,
		BaseURL:     api.server.URL,
		Timeout:     2 * time.Second,
		Retries:     1,
		HTTPClient:  api.server.Client(),
		Clock:       newTickingClock(),
	}
	for _, m := range mutate {
		m(&cfg)
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}
