package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKDA(t *testing.T) {
	tests := []struct {
		name    string
		kills   int
		deaths  int
		assists int
		want    float64
	}{
		{name: "regular", kills: 10, deaths: 2, assists: 4, want: 6.0},
		{name: "no kills", kills: 0, deaths: 5, assists: 0, want: 0.0},
		{name: "zero deaths counts as one", kills: 7, deaths: 0, assists: 3, want: 8.5},
		{name: "nothing at all", kills: 0, deaths: 0, assists: 0, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KDA(tt.kills, tt.deaths, tt.assists), 1e-9)
		})
	}
}

func TestOverallKDASumsBeforeDividing(t *testing.T) {
	stats := []ChampionStat{
		{Champion: "Androxus", Kills: 10, Deaths: 2, Assists: 4},
		{Champion: "Grohk", Kills: 2, Deaths: 6, Assists: 20},
	}

	// (12 + 0.5*24) / 8
	assert.InDelta(t, 3.0, OverallKDA(stats), 1e-9)
}

func TestWinRateGuardsZeroMatches(t *testing.T) {
	percent, ok := WinRate(30, 50)
	require.True(t, ok)
	assert.InDelta(t, 60.0, percent, 1e-9)

	percent, ok = WinRate(0, 0)
	assert.False(t, ok)
	assert.Zero(t, percent)
}

func TestWinRateLabel(t *testing.T) {
	assert.Equal(t, "60%", WinRateLabel(30, 50))
	assert.Equal(t, "67%", WinRateLabel(2, 3))
	assert.Equal(t, "n/a", WinRateLabel(0, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.67, Round2(8.0/3.0))
	assert.Equal(t, 6.0, Round2(6))
}

func TestPartyLabelsFollowAscendingIDs(t *testing.T) {
	labels := PartyLabels([]int64{9, 2, 5, 2, 9})

	assert.Equal(t, map[int64]string{
		2: "Party 1",
		5: "Party 2",
		9: "Party 3",
	}, labels)
}

func TestPartyLabelsDoesNotReorderInput(t *testing.T) {
	ids := []int64{9, 2, 5}
	PartyLabels(ids)

	assert.Equal(t, []int64{9, 2, 5}, ids)
}

func TestSnapshotTranspose(t *testing.T) {
	snapshot := MatchSnapshot{Rows: []SnapshotRow{
		{PlayerName: "alice", DisplayName: "*Inara", DamageDealt: 100, DamageTaken: 50, DamageMitigated: 10, Healing: 0, KDA: "1/2/3", Party: "Party 1"},
		{PlayerName: "bob", DisplayName: "Grohk", DamageDealt: 20, DamageTaken: 5, DamageMitigated: 0, Healing: 900, KDA: "0/1/9", Party: "Party 2"},
	}}

	lines := snapshot.Transpose()

	require.Len(t, lines, len(SnapshotFields))
	assert.Equal(t, []string{"Player", "alice", "bob"}, lines[0])
	assert.Equal(t, []string{"Champion", "*Inara", "Grohk"}, lines[1])
	assert.Equal(t, []string{"Healing", "0", "900"}, lines[5])
	assert.Equal(t, []string{"Party", "Party 1", "Party 2"}, lines[7])
}

func TestCredentialsValidateAndMask(t *testing.T) {
	creds := Credentials{DevID: "2557", AuthKey: "E9A6FA1D226C45B1"}

	require.NoError(t, creds.Validate())
	assert.Equal(t, "dev 2557, key ************45B1", creds.String())
	assert.NotContains(t, creds.String(), creds.AuthKey)

	err := Credentials{DevID: "2557"}.Validate()
	require.ErrorIs(t, err, ErrCredentialsMissing)
	assert.ErrorContains(t, err, "auth key is empty")
}

func TestWinRateSummaryRolling(t *testing.T) {
	summary := WinRateSummary{Wins: 2, Considered: 4, Results: []bool{true, false, true, false}}

	percent, ok := summary.Percent()
	require.True(t, ok)
	assert.InDelta(t, 50.0, percent, 0.001)

	rolling := summary.Rolling()
	require.Len(t, rolling, 4)
	assert.InDelta(t, 0.0, rolling[0], 0.001)
	assert.InDelta(t, 50.0, rolling[1], 0.001)
	assert.InDelta(t, 33.333, rolling[2], 0.001)
	assert.InDelta(t, 50.0, rolling[3], 0.001)

	assert.Empty(t, WinRateSummary{}.Rolling())
}
