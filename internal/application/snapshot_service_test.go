package application

import (
	"context"
	"testing"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastMatchSnapshot(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockStatsAPI(t)
	api.On("GetMatchHistory", mockAnyContext(), "Zeno").Return([]domain.MatchHistoryEntry{
		{MatchID: 42, Won: false},
		{MatchID: 41, Won: true},
	}, nil).Once()
	api.On("GetMatchDetails", mockAnyContext(), int64(42)).Return([]domain.MatchParticipant{
		{PlayerName: "zeno", DisplayName: "Ying", DamageDealt: 1000, Kills: 1, Deaths: 2, Assists: 3, PartyID: 9, Won: false},
		{PlayerName: "b", DisplayName: "Khan", DamageDealt: 2000, Kills: 4, Deaths: 5, Assists: 6, PartyID: 2, Won: true},
		{PlayerName: "c", DisplayName: "Inara", PartyID: 5, Won: false},
		{PlayerName: "d", DisplayName: "Grohk", PartyID: 2, Won: true},
		{PlayerName: "e", DisplayName: "Seris", PartyID: 9, Won: false},
	}, nil).Once()

	snapshot, err := NewSnapshotService(api).LastMatchSnapshot(context.Background(), "Zeno")
	require.NoError(t, err)

	assert.Equal(t, int64(42), snapshot.MatchID)
	require.Len(t, snapshot.Rows, 5)

	var order, display, parties []string
	for _, row := range snapshot.Rows {
		order = append(order, row.PlayerName)
		display = append(display, row.DisplayName)
		parties = append(parties, row.Party)
	}
	assert.Equal(t, []string{"b", "d", "zeno", "c", "e"}, order)
	assert.Equal(t, []string{"Khan", "Grohk", "*Ying", "Inara", "Seris"}, display)
	assert.Equal(t, []string{"Party 1", "Party 1", "Party 3", "Party 2", "Party 3"}, parties)
	assert.Equal(t, "4/5/6", snapshot.Rows[0].KDA)
	assert.Equal(t, "1/2/3", snapshot.Rows[2].KDA)

	lines := snapshot.Transpose()
	assert.Equal(t, []string{"Damage", "2000", "0", "1000", "0", "0"}, lines[2])
}

func TestLastMatchSnapshotEmptyHistory(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockStatsAPI(t)
	api.On("GetMatchHistory", mockAnyContext(), "zeno").Return([]domain.MatchHistoryEntry{}, nil).Once()

	_, err := NewSnapshotService(api).LastMatchSnapshot(context.Background(), "zeno")
	require.ErrorIs(t, err, domain.ErrEmptyResult)
}

func TestLastMatchSnapshotDetailsFailure(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockStatsAPI(t)
	api.On("GetMatchHistory", mockAnyContext(), "zeno").Return([]domain.MatchHistoryEntry{{MatchID: 7}}, nil).Once()
	api.On("GetMatchDetails", mockAnyContext(), int64(7)).Return(nil, domain.ErrAPICall).Once()

	_, err := NewSnapshotService(api).LastMatchSnapshot(context.Background(), "zeno")
	require.ErrorIs(t, err, domain.ErrAPICall)
}
