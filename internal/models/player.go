package models

type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

type InjuryStatus string

const (
	InjuryHealthy      InjuryStatus = "healthy"
	InjuryQuestionable InjuryStatus = "questionable"
	InjuryDoubtful     InjuryStatus = "doubtful"
	InjuryOut          InjuryStatus = "out"
	InjuryIR           InjuryStatus = "ir"
	InjuryPUP          InjuryStatus = "pup"
)

// PlayerProjection is one player's season-level statistical projection.
// Built once per session from the external player directory and treated
// as immutable afterwards.
type PlayerProjection struct {
	Name           string
	Position       Position
	Team           string
	Age            int
	InjuryStatus   InjuryStatus
	ProjectedStats PlayerStats
}

// PlayerStats partitions a statline into the same categories as the
// scoring configuration. A nil category contributes nothing, which is
// distinct from a zero-valued one (a defense that allowed 0 points is
// not the same as no defense statline at all).
type PlayerStats struct {
	Passing      *PassingStats      `json:"passing,omitempty"`
	Rushing      *RushingStats      `json:"rushing,omitempty"`
	Receiving    *ReceivingStats    `json:"receiving,omitempty"`
	Kicking      *KickingStats      `json:"kicking,omitempty"`
	Defense      *DefenseStats      `json:"defense,omitempty"`
	SpecialTeams *SpecialTeamsStats `json:"specialTeams,omitempty"`
	Misc         *MiscStats         `json:"misc,omitempty"`
}

type PassingStats struct {
	Yards               float64 `json:"passingYards"`
	Touchdowns          float64 `json:"passingTDs"`
	TwoPointConversions float64 `json:"twoPointConversions"`
	Interceptions       float64 `json:"interceptions"`
}

type RushingStats struct {
	Yards               float64 `json:"rushingYards"`
	Touchdowns          float64 `json:"rushingTDs"`
	TwoPointConversions float64 `json:"twoPointConversions"`
}

type ReceivingStats struct {
	Receptions          float64 `json:"receptions"`
	Yards               float64 `json:"receivingYards"`
	Touchdowns          float64 `json:"receivingTDs"`
	TwoPointConversions float64 `json:"twoPointConversions"`
}

type KickingStats struct {
	FieldGoalsMade   map[string]float64 `json:"fieldGoalsMade"`
	PATMade          float64            `json:"patMade"`
	FieldGoalsMissed float64            `json:"fieldGoalsMissed"`
	PATMissed        float64            `json:"patMissed"`
}

type DefenseStats struct {
	Touchdowns       float64 `json:"defenseTDs"`
	PointsAllowed    int     `json:"pointsAllowed"`
	Sacks            float64 `json:"sacks"`
	Interceptions    float64 `json:"interceptions"`
	FumbleRecoveries float64 `json:"fumbleRecoveries"`
	Safeties         float64 `json:"safeties"`
	ForcedFumbles    float64 `json:"forcedFumbles"`
	BlockedKicks     float64 `json:"blockedKicks"`
}

// SpecialTeamsStats carries two independent event sets: unit-level events
// and the same events attributed to an individual player.
type SpecialTeamsStats struct {
	UnitTouchdowns         float64 `json:"specialTeamsTDs"`
	UnitForcedFumbles      float64 `json:"specialTeamsForcedFumbles"`
	UnitFumbleRecoveries   float64 `json:"specialTeamsFumbleRecoveries"`
	PlayerTouchdowns       float64 `json:"specialTeamsPlayerTDs"`
	PlayerForcedFumbles    float64 `json:"specialTeamsPlayerForcedFumbles"`
	PlayerFumbleRecoveries float64 `json:"specialTeamsPlayerFumbleRecoveries"`
}

type MiscStats struct {
	Fumbles                  float64 `json:"fumbles"`
	FumblesLost              float64 `json:"fumblesLost"`
	FumbleRecoveryTouchdowns float64 `json:"fumbleRecoveryTDs"`
}
