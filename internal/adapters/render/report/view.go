package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// SnapshotBlockSize is the number of participants shown side by side in one snapshot block.
const SnapshotBlockSize = 5

var teamHeaders = []string{"Player", "Champion", "KDA", "Matches", "Overall", "Rank", "Win%"}

func RenderLiveMatch(player string, live *domain.LiveMatchReport) (string, error) {
	return render(func(s styles) string { return liveMatchView(player, live, s) })
}

func RenderSnapshot(snapshot domain.MatchSnapshot) (string, error) {
	return render(func(s styles) string { return snapshotView(snapshot, s) })
}

func RenderWinRate(summary domain.WinRateSummary, opts ChartOptions) (string, error) {
	return render(func(s styles) string { return winRateView(summary, opts, s) })
}

func RenderPlayer(player domain.Player) (string, error) {
	return render(func(s styles) string { return playerView(player, s) })
}

func RenderQueue(queue domain.QueueReport) (string, error) {
	return render(func(s styles) string { return queueView(queue, s) })
}

func RenderCalls(calls []domain.APICall) (string, error) {
	return render(func(s styles) string { return callsView(calls, s) })
}

func liveMatchView(player string, live *domain.LiveMatchReport, s styles) string {
	if live == nil {
		return s.empty.Render(fmt.Sprintf("%s is not in a live match.", player))
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Live match %d", live.MatchID)),
		s.header.Render(fmt.Sprintf("queue: %d", live.QueueID)),
	}
	for i, team := range live.Teams {
		lines = append(lines, s.section.Render(teamView(fmt.Sprintf("Team %d", i+1), team, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func teamView(title string, team domain.TeamReport, s styles) string {
	parts := []string{s.title.Render(title)}

	if len(team.Rows) == 0 {
		parts = append(parts, s.empty.Render("No player stats available."))
	} else {
		rows := make([][]string, 0, len(team.Rows))
		for _, r := range team.Rows {
			rows = append(rows, []string{
				r.Player,
				r.Champion,
				formatKDA(r.ChampionKDA),
				strconv.Itoa(r.ChampionMatches),
				formatKDA(r.OverallKDA),
				strconv.Itoa(r.KDARank),
				r.WinRate,
			})
		}
		parts = append(parts, table(teamHeaders, rows, s))
	}

	for _, f := range team.Failures {
		name := f.Player
		if name == "" {
			name = "(hidden)"
		}
		parts = append(parts, s.warning.Render(fmt.Sprintf("skipped %s on %s: %s", name, f.Champion, f.Reason)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// snapshotView prints the transposed snapshot in blocks of five participants,
// so winners and losers of a 5v5 match land in separate blocks.
func snapshotView(snapshot domain.MatchSnapshot, s styles) string {
	lines := []string{s.title.Render(fmt.Sprintf("Match %d", snapshot.MatchID))}
	if len(snapshot.Rows) == 0 {
		lines = append(lines, s.empty.Render("No participants."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for start := 0; start < len(snapshot.Rows); start += SnapshotBlockSize {
		end := min(start+SnapshotBlockSize, len(snapshot.Rows))
		block := domain.MatchSnapshot{Rows: snapshot.Rows[start:end]}

		outcome := s.loser.Render("Defeat")
		if snapshot.Rows[start].Won {
			outcome = s.winner.Render("Victory")
		}

		transposed := block.Transpose()
		headers := transposed[0]
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, outcome, table(headers, transposed[1:], s))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func winRateView(summary domain.WinRateSummary, opts ChartOptions, s styles) string {
	if _, ok := summary.Percent(); !ok {
		return s.empty.Render(fmt.Sprintf("%s has no recent matches.", summary.Player))
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("%s won %d of the last %d matches (%s)",
			summary.Player, summary.Wins, summary.Considered, domain.WinRateLabel(summary.Wins, summary.Considered))),
	}
	if opts.Graph {
		lines = append(lines, s.section.Render(winRateChart(summary, opts)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func playerView(player domain.Player, s styles) string {
	rows := [][]string{
		{"Level", strconv.Itoa(player.Level)},
		{"Wins", strconv.Itoa(player.Wins)},
		{"Losses", strconv.Itoa(player.Losses)},
		{"Win%", domain.WinRateLabel(player.Wins, player.Wins+player.Losses)},
		{"Region", orNA(player.Region)},
		{"Platform", orNA(player.Platform)},
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render(fmt.Sprintf("%s (%d)", player.Name, player.ID)),
		table([]string{"", ""}, rows, s),
	)
}

func queueView(queue domain.QueueReport, s styles) string {
	rows := make([][]string, 0, len(queue.Rows))
	for _, r := range queue.Rows {
		rows = append(rows, []string{r.Champion, strconv.Itoa(r.Matches), formatKDA(r.KDA), r.WinRate})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render(fmt.Sprintf("%s in queue %d", queue.Player, queue.QueueID)),
		table([]string{"Champion", "Matches", "KDA", "Win%"}, rows, s),
	)
}

func callsView(calls []domain.APICall, s styles) string {
	if len(calls) == 0 {
		return s.empty.Render("No api calls recorded.")
	}

	rows := make([][]string, 0, len(calls))
	for _, c := range calls {
		status := "-"
		if c.StatusCode > 0 {
			status = strconv.Itoa(c.StatusCode)
		}
		rows = append(rows, []string{
			c.Timestamp.Local().Format(time.DateTime),
			c.Method,
			c.EntityID,
			status,
			c.Duration.Round(time.Millisecond).String(),
			strconv.Itoa(c.Attempt),
			truncate(c.Error, 60),
		})
	}

	return table([]string{"Time", "Method", "Entity", "Status", "Took", "Try", "Error"}, rows, s)
}

func formatKDA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "n/a"
	}
	return v
}

func truncate(v string, limit int) string {
	if len(v) <= limit {
		return v
	}
	return v[:limit] + "..."
}
