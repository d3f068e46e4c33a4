package domain

// LiveMatchStatus is the player status code the server reports while a match is in progress.
const LiveMatchStatus = 3

type Player struct {
	ID       int64
	Name     string
	Level    int
	Wins     int
	Losses   int
	Region   string
	Platform string
}

type PlayerStatus struct {
	Code        int
	Description string
	MatchID     int64
	QueueID     int64
}

func (s PlayerStatus) InLiveMatch() bool {
	return s.Code == LiveMatchStatus
}

// ChampionStat is one entry of a player's per-champion totals.
type ChampionStat struct {
	Champion string
	Kills    int
	Deaths   int
	Assists  int
	Wins     int
	Losses   int
}

func (c ChampionStat) Matches() int {
	return c.Wins + c.Losses
}

func (c ChampionStat) KDA() float64 {
	return KDA(c.Kills, c.Deaths, c.Assists)
}

// QueueStat is a player's per-champion totals restricted to one queue.
type QueueStat struct {
	ChampionStat
	QueueID int64
	Minutes int
}

type RosterEntry struct {
	PlayerName string
	Champion   string
	TaskForce  int
	QueueID    int64
}

type MatchHistoryEntry struct {
	MatchID  int64
	Champion string
	Won      bool
	Kills    int
	Deaths   int
	Assists  int
	QueueID  int64
}

type MatchParticipant struct {
	PlayerName      string
	DisplayName     string
	DamageDealt     int
	DamageTaken     int
	DamageMitigated int
	Healing         int
	Kills           int
	Deaths          int
	Assists         int
	PartyID         int64
	Won             bool
}
