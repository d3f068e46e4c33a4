package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCallLog(t *testing.T) *CallLog {
	t.Helper()

	log, err := NewCallLog(filepath.Join(t.TempDir(), "logs", "calls.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })

	return log
}

func TestCallLogRecordAndList(t *testing.T) {
	t.Parallel()

	log := newTestCallLog(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, log.RecordCall(ctx, domain.APICall{
		Timestamp:  started,
		Method:     "createsession",
		StatusCode: 200,
		Duration:   120 * time.Millisecond,
		Attempt:    1,
	}))
	require.NoError(t, log.RecordCall(ctx, domain.APICall{
		Timestamp:  started.Add(time.Second),
		Method:     "getplayer",
		EntityID:   "Zeno",
		StatusCode: 503,
		Duration:   2 * time.Second,
		Attempt:    2,
		Error:      "api call failed getplayer: status 503",
	}))

	calls, err := log.RecentCalls(ctx, 10)
	require.NoError(t, err)
	require.Len(t, calls, 2)

	assert.Equal(t, "getplayer", calls[0].Method)
	assert.Equal(t, "Zeno", calls[0].EntityID)
	assert.Equal(t, 503, calls[0].StatusCode)
	assert.Equal(t, 2*time.Second, calls[0].Duration)
	assert.Equal(t, 2, calls[0].Attempt)
	assert.True(t, started.Add(time.Second).Equal(calls[0].Timestamp))
	assert.NotEmpty(t, calls[0].Error)

	assert.Equal(t, "createsession", calls[1].Method)
	assert.Empty(t, calls[1].EntityID)
	assert.Empty(t, calls[1].Error)
	assert.Greater(t, calls[0].ID, calls[1].ID)
}

func TestCallLogRecentCallsLimit(t *testing.T) {
	t.Parallel()

	log := newTestCallLog(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, log.RecordCall(context.Background(), domain.APICall{Method: "getmatchhistory", Attempt: i + 1}))
	}

	calls, err := log.RecentCalls(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, 5, calls[0].Attempt)
}

func TestNewCallLogFromConfigDisabled(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set(CallLogPathKey, "")

	_, err := NewCallLogFromConfig(config)
	require.ErrorIs(t, err, ErrDisabled)
}

func TestNewCallLogFromConfigPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calls.db")
	config := viper.New()
	config.Set(CallLogPathKey, path)

	log, err := NewCallLogFromConfig(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })
	assert.Equal(t, path, log.Path())
}
