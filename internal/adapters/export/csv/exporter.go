// Package csv writes reports to delimited files named after the export time.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
)

const (
	fileLayout = "20060102150405"
	dirMode    = 0o755
	fileMode   = 0o644
)

type Exporter struct {
	dir   string
	clock ports.Clock
}

func NewExporter(dir string, clock ports.Clock) *Exporter {
	if dir == "" {
		dir = "."
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Exporter{dir: dir, clock: clock}
}

// ExportSnapshot writes the transposed snapshot: one line per field, one column per participant.
func (e *Exporter) ExportSnapshot(snapshot domain.MatchSnapshot) (string, error) {
	return e.write(snapshot.Transpose())
}

// ExportLiveMatch writes both teams' rows, tagged with their team number.
func (e *Exporter) ExportLiveMatch(live domain.LiveMatchReport) (string, error) {
	records := [][]string{{"Team", "Player", "Champion", "KDA", "Matches", "Overall", "Rank", "Win%"}}
	for i, team := range live.Teams {
		for _, row := range team.Rows {
			records = append(records, []string{
				strconv.Itoa(i + 1),
				row.Player,
				row.Champion,
				strconv.FormatFloat(row.ChampionKDA, 'f', 2, 64),
				strconv.Itoa(row.ChampionMatches),
				strconv.FormatFloat(row.OverallKDA, 'f', 2, 64),
				strconv.Itoa(row.KDARank),
				row.WinRate,
			})
		}
	}

	return e.write(records)
}

func (e *Exporter) write(records [][]string) (string, error) {
	if err := os.MkdirAll(e.dir, dirMode); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(e.dir, e.clock.Now().UTC().Format(fileLayout)+".csv")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}

	return path, nil
}
