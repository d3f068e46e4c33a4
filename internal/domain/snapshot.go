package domain

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// PlayerMarker prefixes the display name of the player a snapshot was requested for.
const PlayerMarker = "*"

// SnapshotFields are the display labels of a snapshot row, in column order.
var SnapshotFields = []string{"Player", "Champion", "Damage", "Taken", "Shielding", "Healing", "KDA", "Party"}

type SnapshotRow struct {
	PlayerName      string
	DisplayName     string
	DamageDealt     int
	DamageTaken     int
	DamageMitigated int
	Healing         int
	KDA             string
	Party           string
	Won             bool
}

func (r SnapshotRow) Values() []string {
	return []string{
		r.PlayerName,
		r.DisplayName,
		strconv.Itoa(r.DamageDealt),
		strconv.Itoa(r.DamageTaken),
		strconv.Itoa(r.DamageMitigated),
		strconv.Itoa(r.Healing),
		r.KDA,
		r.Party,
	}
}

type MatchSnapshot struct {
	MatchID int64
	Player  string
	Rows    []SnapshotRow
}

// Transpose returns one line per field: the field label followed by one value per participant.
func (s MatchSnapshot) Transpose() [][]string {
	lines := make([][]string, len(SnapshotFields))
	for i, field := range SnapshotFields {
		lines[i] = make([]string, 0, len(s.Rows)+1)
		lines[i] = append(lines[i], field)
	}

	for _, row := range s.Rows {
		for i, value := range row.Values() {
			lines[i] = append(lines[i], value)
		}
	}

	return lines
}

func KDAString(kills, deaths, assists int) string {
	return fmt.Sprintf("%d/%d/%d", kills, deaths, assists)
}

// PartyLabels maps each distinct party id to "Party N", numbered in ascending id order.
func PartyLabels(partyIDs []int64) map[int64]string {
	distinct := lo.Uniq(partyIDs)
	slices.Sort(distinct)

	labels := make(map[int64]string, len(distinct))
	for i, id := range distinct {
		labels[id] = fmt.Sprintf("Party %d", i+1)
	}

	return labels
}
