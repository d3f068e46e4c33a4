package paladins

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

// flexInt accepts numbers, quoted numbers and null; the server is not consistent about ids.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = flexInt(n)
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("decode integer %q: %w", raw, err)
	}
	*f = flexInt(v)

	return nil
}

type serverMessage struct {
	RetMsg string `json:"ret_msg"`
}

func (m serverMessage) message() string { return strings.TrimSpace(m.RetMsg) }

type playerRecord struct {
	ID       flexInt `json:"Id"`
	Name     string  `json:"Name"`
	HzName   string  `json:"hz_player_name"`
	Level    flexInt `json:"Level"`
	Wins     flexInt `json:"Wins"`
	Losses   flexInt `json:"Losses"`
	Region   string  `json:"Region"`
	Platform string  `json:"Platform"`
	serverMessage
}

func (r playerRecord) present() bool { return r.ID != 0 || r.Name != "" || r.HzName != "" }

func (r playerRecord) toDomain() (domain.Player, error) {
	name := r.Name
	if name == "" {
		name = r.HzName
	}

	return domain.Player{
		ID:       int64(r.ID),
		Name:     name,
		Level:    int(r.Level),
		Wins:     int(r.Wins),
		Losses:   int(r.Losses),
		Region:   r.Region,
		Platform: r.Platform,
	}, nil
}

type playerStatusRecord struct {
	Match        flexInt  `json:"Match"`
	MatchQueueID flexInt  `json:"match_queue_id"`
	Status       *flexInt `json:"status"`
	StatusString string   `json:"status_string"`
	serverMessage
}

func (r playerStatusRecord) present() bool { return r.Status != nil }

func (r playerStatusRecord) toDomain() (domain.PlayerStatus, error) {
	return domain.PlayerStatus{
		Code:        int(*r.Status),
		Description: r.StatusString,
		MatchID:     int64(r.Match),
		QueueID:     int64(r.MatchQueueID),
	}, nil
}

type championRankRecord struct {
	Champion string  `json:"champion"`
	Kills    flexInt `json:"Kills"`
	Deaths   flexInt `json:"Deaths"`
	Assists  flexInt `json:"Assists"`
	Wins     flexInt `json:"Wins"`
	Losses   flexInt `json:"Losses"`
	serverMessage
}

func (r championRankRecord) present() bool {
	return r.Champion != "" || r.Kills != 0 || r.Deaths != 0 || r.Wins != 0 || r.Losses != 0
}

func (r championRankRecord) toDomain() (domain.ChampionStat, error) {
	if strings.TrimSpace(r.Champion) == "" {
		return domain.ChampionStat{}, fmt.Errorf("%w: champion rank without champion name", domain.ErrDataAnomaly)
	}

	return domain.ChampionStat{
		Champion: r.Champion,
		Kills:    int(r.Kills),
		Deaths:   int(r.Deaths),
		Assists:  int(r.Assists),
		Wins:     int(r.Wins),
		Losses:   int(r.Losses),
	}, nil
}

type queueStatRecord struct {
	Champion string  `json:"Champion"`
	Kills    flexInt `json:"Kills"`
	Deaths   flexInt `json:"Deaths"`
	Assists  flexInt `json:"Assists"`
	Wins     flexInt `json:"Wins"`
	Losses   flexInt `json:"Losses"`
	Minutes  flexInt `json:"Minutes"`
	serverMessage
}

func (r queueStatRecord) present() bool { return r.Champion != "" }

func (r queueStatRecord) toDomain() (domain.QueueStat, error) {
	return domain.QueueStat{
		ChampionStat: domain.ChampionStat{
			Champion: r.Champion,
			Kills:    int(r.Kills),
			Deaths:   int(r.Deaths),
			Assists:  int(r.Assists),
			Wins:     int(r.Wins),
			Losses:   int(r.Losses),
		},
		Minutes: int(r.Minutes),
	}, nil
}

type rosterRecord struct {
	PlayerName   string  `json:"playerName"`
	ChampionName string  `json:"ChampionName"`
	TaskForce    flexInt `json:"taskForce"`
	Queue        flexInt `json:"Queue"`
	serverMessage
}

func (r rosterRecord) present() bool { return r.ChampionName != "" || r.PlayerName != "" }

func (r rosterRecord) toDomain() (domain.RosterEntry, error) {
	return domain.RosterEntry{
		PlayerName: r.PlayerName,
		Champion:   r.ChampionName,
		TaskForce:  int(r.TaskForce),
		QueueID:    int64(r.Queue),
	}, nil
}

type matchHistoryRecord struct {
	Match     flexInt `json:"Match"`
	Champion  string  `json:"Champion"`
	WinStatus string  `json:"Win_Status"`
	Kills     flexInt `json:"Kills"`
	Deaths    flexInt `json:"Deaths"`
	Assists   flexInt `json:"Assists"`
	Queue     flexInt `json:"Match_Queue_Id"`
	serverMessage
}

func (r matchHistoryRecord) present() bool { return r.Match != 0 }

func (r matchHistoryRecord) toDomain() (domain.MatchHistoryEntry, error) {
	return domain.MatchHistoryEntry{
		MatchID:  int64(r.Match),
		Champion: r.Champion,
		Won:      isWin(r.WinStatus),
		Kills:    int(r.Kills),
		Deaths:   int(r.Deaths),
		Assists:  int(r.Assists),
		QueueID:  int64(r.Queue),
	}, nil
}

type matchDetailRecord struct {
	PlayerName      string  `json:"playerName"`
	ReferenceName   string  `json:"Reference_Name"`
	DamagePlayer    flexInt `json:"Damage_Player"`
	DamageTaken     flexInt `json:"Damage_Taken"`
	DamageMitigated flexInt `json:"Damage_Mitigated"`
	Healing         flexInt `json:"Healing"`
	Kills           flexInt `json:"Kills_Player"`
	Deaths          flexInt `json:"Deaths"`
	Assists         flexInt `json:"Assists"`
	PartyID         flexInt `json:"PartyId"`
	WinStatus       string  `json:"Win_Status"`
	serverMessage
}

func (r matchDetailRecord) present() bool { return r.PlayerName != "" || r.ReferenceName != "" }

func (r matchDetailRecord) toDomain() (domain.MatchParticipant, error) {
	return domain.MatchParticipant{
		PlayerName:      r.PlayerName,
		DisplayName:     r.ReferenceName,
		DamageDealt:     int(r.DamagePlayer),
		DamageTaken:     int(r.DamageTaken),
		DamageMitigated: int(r.DamageMitigated),
		Healing:         int(r.Healing),
		Kills:           int(r.Kills),
		Deaths:          int(r.Deaths),
		Assists:         int(r.Assists),
		PartyID:         int64(r.PartyID),
		Won:             isWin(r.WinStatus),
	}, nil
}

func isWin(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "win", "winner":
		return true
	default:
		return false
	}
}
