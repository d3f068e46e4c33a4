package domain

// PlayerReport is one player's performance on the champion they are currently playing.
type PlayerReport struct {
	Player          string
	Champion        string
	ChampionKDA     float64
	ChampionMatches int
	OverallKDA      float64
	KDARank         int
	WinRate         string
}

// PlayerFailure records a roster entry that could not be reported on.
type PlayerFailure struct {
	Player   string
	Champion string
	Reason   string
	Err      error `json:"-"`
}

// TeamReport holds the reported rows sorted by champion KDA, best first, and the
// entries that failed along the way.
type TeamReport struct {
	QueueID  int64
	Rows     []PlayerReport
	Failures []PlayerFailure
}

type LiveMatchReport struct {
	MatchID int64
	QueueID int64
	Teams   [2]TeamReport
}

// WinRateSummary counts wins over the most recent Considered matches. Results
// holds the outcome of each considered match, most recent first.
type WinRateSummary struct {
	Player     string
	Wins       int
	Considered int
	Results    []bool
}

func (s WinRateSummary) Percent() (float64, bool) {
	return WinRate(s.Wins, s.Considered)
}

// Rolling returns the cumulative win rate after each considered match, oldest first.
func (s WinRateSummary) Rolling() []float64 {
	series := make([]float64, 0, len(s.Results))
	wins := 0
	for i := len(s.Results) - 1; i >= 0; i-- {
		if s.Results[i] {
			wins++
		}
		played := len(s.Results) - i
		percent, _ := WinRate(wins, played)
		series = append(series, percent)
	}

	return series
}

type QueueReportRow struct {
	Champion string
	Matches  int
	KDA      float64
	WinRate  string
}

type QueueReport struct {
	Player  string
	QueueID int64
	Rows    []QueueReportRow
}
