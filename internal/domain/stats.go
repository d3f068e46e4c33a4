package domain

import (
	"fmt"
	"math"
)

// KDA returns (kills + 0.5*assists) / deaths. Zero deaths count as one so the
// result stays finite and comparable.
func KDA(kills, deaths, assists int) float64 {
	d := deaths
	if d <= 0 {
		d = 1
	}

	return (float64(kills) + 0.5*float64(assists)) / float64(d)
}

// OverallKDA applies KDA to the summed totals of every champion.
func OverallKDA(stats []ChampionStat) float64 {
	var kills, deaths, assists int
	for _, stat := range stats {
		kills += stat.Kills
		deaths += stat.Deaths
		assists += stat.Assists
	}

	return KDA(kills, deaths, assists)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WinRate returns wins/matches as a percentage; ok is false when there were no matches.
func WinRate(wins, matches int) (percent float64, ok bool) {
	if matches <= 0 {
		return 0, false
	}

	return float64(wins) / float64(matches) * 100, true
}

func WinRateLabel(wins, matches int) string {
	percent, ok := WinRate(wins, matches)
	if !ok {
		return "n/a"
	}

	return fmt.Sprintf("%.0f%%", math.Round(percent))
}
