package env

import (
	"context"
	"testing"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key  string
		want string
	}{
		{key: "paladins/auth_key", want: "PALADINS_AUTH_KEY"},
		{key: "paladins/dev_id", want: "PALADINS_DEV_ID"},
		{key: " team.bot-key ", want: "TEAM_BOT_KEY"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			got, err := VariableName(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := VariableName("  ")
	require.Error(t, err)
}

func TestStoreGet(t *testing.T) {
	t.Parallel()

	store := &Store{lookup: func(name string) (string, bool) {
		values := map[string]string{"PALADINS_DEV_ID": "2557", "PALADINS_AUTH_KEY": "  "}
		v, ok := values[name]
		return v, ok
	}}

	got, err := store.Get(context.Background(), "paladins/dev_id")
	require.NoError(t, err)
	assert.Equal(t, "2557", got)

	_, err = store.Get(context.Background(), "paladins/auth_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	_, err = store.Get(context.Background(), "paladins/other")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "PALADINS_OTHER")
}

func TestStoreIsReadOnly(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.ErrorIs(t, store.Put(context.Background(), "paladins/dev_id", "1"), ErrReadOnly)
	require.ErrorIs(t, store.Delete(context.Background(), "paladins/dev_id"), ErrReadOnly)
}
