package ports

import (
	"context"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

// StatsAPI is the typed view of the statistics server the report services consume.
type StatsAPI interface {
	GetPlayer(ctx context.Context, player string) (domain.Player, error)
	GetPlayerStatus(ctx context.Context, player string) (domain.PlayerStatus, error)
	GetChampionRanks(ctx context.Context, player string) ([]domain.ChampionStat, error)
	GetQueueStats(ctx context.Context, player string, queueID int64) ([]domain.QueueStat, error)
	GetMatchHistory(ctx context.Context, player string) ([]domain.MatchHistoryEntry, error)
	GetMatchDetails(ctx context.Context, matchID int64) ([]domain.MatchParticipant, error)
	GetMatchPlayerDetails(ctx context.Context, matchID int64) ([]domain.RosterEntry, error)
}
