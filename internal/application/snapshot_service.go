package application

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/samber/lo"
)

type SnapshotService struct {
	api ports.StatsAPI
}

func NewSnapshotService(api ports.StatsAPI) *SnapshotService {
	return &SnapshotService{api: api}
}

// LastMatchSnapshot builds the box score of the player's most recent match.
// Winners come first, otherwise participants keep the order the server sent.
func (s *SnapshotService) LastMatchSnapshot(ctx context.Context, player string) (domain.MatchSnapshot, error) {
	history, err := s.api.GetMatchHistory(ctx, player)
	if err != nil {
		return domain.MatchSnapshot{}, fmt.Errorf("get match history for %q: %w", player, err)
	}
	latest, ok := lo.First(history)
	if !ok {
		return domain.MatchSnapshot{}, fmt.Errorf("%w: no match history for %q", domain.ErrEmptyResult, player)
	}

	participants, err := s.api.GetMatchDetails(ctx, latest.MatchID)
	if err != nil {
		return domain.MatchSnapshot{}, fmt.Errorf("get match %d details: %w", latest.MatchID, err)
	}

	labels := domain.PartyLabels(lo.Map(participants, func(p domain.MatchParticipant, _ int) int64 { return p.PartyID }))

	rows := make([]domain.SnapshotRow, 0, len(participants))
	for _, p := range participants {
		display := p.DisplayName
		if sameName(p.PlayerName, player) {
			display = domain.PlayerMarker + display
		}

		rows = append(rows, domain.SnapshotRow{
			PlayerName:      p.PlayerName,
			DisplayName:     display,
			DamageDealt:     p.DamageDealt,
			DamageTaken:     p.DamageTaken,
			DamageMitigated: p.DamageMitigated,
			Healing:         p.Healing,
			KDA:             domain.KDAString(p.Kills, p.Deaths, p.Assists),
			Party:           labels[p.PartyID],
			Won:             p.Won,
		})
	}

	slices.SortStableFunc(rows, func(a, b domain.SnapshotRow) int {
		return cmp.Compare(winOrder(a.Won), winOrder(b.Won))
	})

	return domain.MatchSnapshot{MatchID: latest.MatchID, Player: player, Rows: rows}, nil
}

func winOrder(won bool) int {
	if won {
		return 0
	}

	return 1
}
