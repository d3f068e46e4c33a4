package mocks

import (
	"context"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockStatsAPI struct {
	mock.Mock
}

var _ ports.StatsAPI = (*MockStatsAPI)(nil)

func NewMockStatsAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsAPI {
	m := &MockStatsAPI{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockStatsAPI) GetPlayer(ctx context.Context, player string) (domain.Player, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(domain.Player), args.Error(1)
}

func (m *MockStatsAPI) GetPlayerStatus(ctx context.Context, player string) (domain.PlayerStatus, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(domain.PlayerStatus), args.Error(1)
}

func (m *MockStatsAPI) GetChampionRanks(ctx context.Context, player string) ([]domain.ChampionStat, error) {
	args := m.Called(ctx, player)
	stats, _ := args.Get(0).([]domain.ChampionStat)
	return stats, args.Error(1)
}

func (m *MockStatsAPI) GetQueueStats(ctx context.Context, player string, queueID int64) ([]domain.QueueStat, error) {
	args := m.Called(ctx, player, queueID)
	stats, _ := args.Get(0).([]domain.QueueStat)
	return stats, args.Error(1)
}

func (m *MockStatsAPI) GetMatchHistory(ctx context.Context, player string) ([]domain.MatchHistoryEntry, error) {
	args := m.Called(ctx, player)
	entries, _ := args.Get(0).([]domain.MatchHistoryEntry)
	return entries, args.Error(1)
}

func (m *MockStatsAPI) GetMatchDetails(ctx context.Context, matchID int64) ([]domain.MatchParticipant, error) {
	args := m.Called(ctx, matchID)
	participants, _ := args.Get(0).([]domain.MatchParticipant)
	return participants, args.Error(1)
}

func (m *MockStatsAPI) GetMatchPlayerDetails(ctx context.Context, matchID int64) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, matchID)
	roster, _ := args.Get(0).([]domain.RosterEntry)
	return roster, args.Error(1)
}
