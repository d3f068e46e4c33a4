package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// TeamSize is the number of roster entries that make up the first team of a live match.
const TeamSize = 5

type ReportService struct {
	api    ports.StatsAPI
	logger *zap.Logger
}

func NewReportService(api ports.StatsAPI, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ReportService{api: api, logger: logger}
}

// BuildPlayerReport ranks every champion the player has played by KDA and
// reports on the one named champion.
func (s *ReportService) BuildPlayerReport(ctx context.Context, player, champion string) (domain.PlayerReport, error) {
	stats, err := s.api.GetChampionRanks(ctx, player)
	if err != nil {
		return domain.PlayerReport{}, fmt.Errorf("get champion ranks for %q: %w", player, err)
	}
	if len(stats) == 0 {
		return domain.PlayerReport{}, fmt.Errorf("%w: no champion ranks for %q", domain.ErrEmptyResult, player)
	}

	ranked := rankByKDA(stats)
	index := slices.IndexFunc(ranked, func(stat domain.ChampionStat) bool {
		return sameName(stat.Champion, champion)
	})
	if index < 0 {
		return domain.PlayerReport{}, fmt.Errorf("%w: %q has no ranks for champion %q", domain.ErrDataAnomaly, player, champion)
	}
	stat := ranked[index]

	return domain.PlayerReport{
		Player:          player,
		Champion:        stat.Champion,
		ChampionKDA:     domain.Round2(stat.KDA()),
		ChampionMatches: stat.Matches(),
		OverallKDA:      domain.Round2(domain.OverallKDA(stats)),
		KDARank:         index + 1,
		WinRate:         domain.WinRateLabel(stat.Wins, stat.Matches()),
	}, nil
}

// BuildTeamReport reports on every roster entry it can. Entries that fail are
// logged and returned as failures; they never fail the whole team.
func (s *ReportService) BuildTeamReport(ctx context.Context, roster []domain.RosterEntry, queueID int64) domain.TeamReport {
	team := domain.TeamReport{QueueID: queueID}

	for _, entry := range roster {
		if strings.TrimSpace(entry.PlayerName) == "" {
			team.Failures = append(team.Failures, domain.PlayerFailure{
				Champion: entry.Champion,
				Reason:   "hidden profile",
			})
			continue
		}

		report, err := s.BuildPlayerReport(ctx, entry.PlayerName, entry.Champion)
		if err != nil {
			failure := domain.PlayerFailure{
				Player:   entry.PlayerName,
				Champion: entry.Champion,
				Reason:   failureReason(err),
				Err:      err,
			}
			s.logger.Warn("skipping player in team report",
				zap.String("player", failure.Player),
				zap.String("champion", failure.Champion),
				zap.String("reason", failure.Reason),
				zap.Error(err),
			)
			team.Failures = append(team.Failures, failure)
			continue
		}

		team.Rows = append(team.Rows, report)
	}

	slices.SortStableFunc(team.Rows, func(a, b domain.PlayerReport) int {
		return cmp.Compare(b.ChampionKDA, a.ChampionKDA)
	})

	return team
}

// CurrentMatchReports returns nil without an error when the player is not in a live match.
func (s *ReportService) CurrentMatchReports(ctx context.Context, player string) (*domain.LiveMatchReport, error) {
	status, err := s.api.GetPlayerStatus(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("get player status for %q: %w", player, err)
	}
	if !status.InLiveMatch() {
		s.logger.Debug("player not in live match", zap.String("player", player), zap.Int("status", status.Code))
		return nil, nil
	}

	roster, err := s.api.GetMatchPlayerDetails(ctx, status.MatchID)
	if err != nil {
		return nil, fmt.Errorf("get live match %d roster: %w", status.MatchID, err)
	}

	ordered := slices.Clone(roster)
	slices.SortStableFunc(ordered, func(a, b domain.RosterEntry) int {
		return cmp.Compare(a.TaskForce, b.TaskForce)
	})
	split := min(TeamSize, len(ordered))

	queueID := status.QueueID
	if first, ok := lo.First(ordered); ok && first.QueueID != 0 {
		queueID = first.QueueID
	}

	return &domain.LiveMatchReport{
		MatchID: status.MatchID,
		QueueID: queueID,
		Teams: [2]domain.TeamReport{
			s.BuildTeamReport(ctx, ordered[:split], queueID),
			s.BuildTeamReport(ctx, ordered[split:], queueID),
		},
	}, nil
}

// WinRate counts wins over the lastN most recent matches; lastN <= 0 considers the whole history.
func (s *ReportService) WinRate(ctx context.Context, player string, lastN int) (domain.WinRateSummary, error) {
	history, err := s.api.GetMatchHistory(ctx, player)
	if err != nil {
		return domain.WinRateSummary{}, fmt.Errorf("get match history for %q: %w", player, err)
	}

	considered := history
	if lastN > 0 && lastN < len(history) {
		considered = history[:lastN]
	}

	results := lo.Map(considered, func(entry domain.MatchHistoryEntry, _ int) bool { return entry.Won })

	return domain.WinRateSummary{
		Player:     player,
		Wins:       lo.Count(results, true),
		Considered: len(considered),
		Results:    results,
	}, nil
}

// QueueReport lists the player's champions in one queue, best KDA first.
func (s *ReportService) QueueReport(ctx context.Context, player string, queueID int64) (domain.QueueReport, error) {
	stats, err := s.api.GetQueueStats(ctx, player, queueID)
	if err != nil {
		return domain.QueueReport{}, fmt.Errorf("get queue %d stats for %q: %w", queueID, player, err)
	}
	if len(stats) == 0 {
		return domain.QueueReport{}, fmt.Errorf("%w: %q has no stats in queue %d", domain.ErrEmptyResult, player, queueID)
	}

	ranked := rankByKDA(lo.Map(stats, func(stat domain.QueueStat, _ int) domain.ChampionStat { return stat.ChampionStat }))

	return domain.QueueReport{
		Player:  player,
		QueueID: queueID,
		Rows: lo.Map(ranked, func(stat domain.ChampionStat, _ int) domain.QueueReportRow {
			return domain.QueueReportRow{
				Champion: stat.Champion,
				Matches:  stat.Matches(),
				KDA:      domain.Round2(stat.KDA()),
				WinRate:  domain.WinRateLabel(stat.Wins, stat.Matches()),
			}
		}),
	}, nil
}

// rankByKDA returns a copy sorted by KDA, best first; ties keep fetch order.
func rankByKDA(stats []domain.ChampionStat) []domain.ChampionStat {
	ranked := slices.Clone(stats)
	slices.SortStableFunc(ranked, func(a, b domain.ChampionStat) int {
		return cmp.Compare(b.KDA(), a.KDA())
	})

	return ranked
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return "no champion stats"
	case errors.Is(err, domain.ErrDataAnomaly):
		return "champion not in stats"
	case errors.Is(err, domain.ErrSessionCreation):
		return "no api session"
	case errors.Is(err, domain.ErrAPICall):
		return "api call failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "unexpected error"
	}
}
