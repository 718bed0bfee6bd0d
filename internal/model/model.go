package model

import "time"

// Role represents which side of a match a player is on.
type Role int

const (
	RoleNone   Role = 0
	RoleRunner Role = 1
	RoleCorp   Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleRunner:
		return "runner"
	case RoleCorp:
		return "corp"
	default:
		return "?"
	}
}

// Opponent returns the other side. RoleNone maps to RoleNone.
func (r Role) Opponent() Role {
	switch r {
	case RoleRunner:
		return RoleCorp
	case RoleCorp:
		return RoleRunner
	default:
		return RoleNone
	}
}

// ParseRole maps the two known role tokens to a Role. Anything else,
// including a missing or mistyped winner field, is RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "runner":
		return RoleRunner
	case "corp":
		return RoleCorp
	default:
		return RoleNone
	}
}

// Unrecorded marks numeric fields the export did not carry.
const Unrecorded = -1

const (
	UnknownIdentity = "Unknown Identity"
	UnknownFaction  = "UNKNOWN"
)

// RoleSnapshot captures one side of a game: who played it and with which
// identity. Empty strings mean the export carried no usable value.
type RoleSnapshot struct {
	Username string
	Identity string
}

// GameRecord is one normalized match. It is the sole source of truth;
// every other type in this package is derived from a []GameRecord and
// never mutated after normalization.
type GameRecord struct {
	GameID      string
	Winner      Role // RoleNone when no winner was recorded
	Runner      RoleSnapshot
	Corp        RoleSnapshot
	CompletedAt time.Time // zero when no date could be resolved
	Format      string    // trimmed, lower-cased; empty when absent

	// Supplemental export fields; Unrecorded when absent.
	Turns          int
	UniqueAccesses int
}

// Side returns the snapshot for the given role.
func (g GameRecord) Side(r Role) RoleSnapshot {
	if r == RoleCorp {
		return g.Corp
	}
	return g.Runner
}

// HasDate reports whether a completion date was resolved.
func (g GameRecord) HasDate() bool {
	return !g.CompletedAt.IsZero()
}

// ResolveRole determines whether any of the given usernames played this
// game, checking the runner seat first. It is the single role-matching
// implementation shared by every aggregator.
func ResolveRole(g GameRecord, usernames []string) (Role, bool) {
	for _, name := range usernames {
		if name != "" && g.Runner.Username == name {
			return RoleRunner, true
		}
	}
	for _, name := range usernames {
		if name != "" && g.Corp.Username == name {
			return RoleCorp, true
		}
	}
	return RoleNone, false
}

// IdentityMap maps identity names to faction keys.
type IdentityMap map[string]string

// Faction looks up the faction for an identity, defaulting to UNKNOWN.
func (m IdentityMap) Faction(identity string) string {
	if identity == "" {
		return UnknownFaction
	}
	if f, ok := m[identity]; ok {
		return f
	}
	return UnknownFaction
}

// UserProfile describes the detected viewer. It is recomputed in full
// whenever the underlying game list changes.
type UserProfile struct {
	Username       string   // primary/display name
	Usernames      []string // alias set, primary first
	TotalGames     int
	RunnerGames    int
	CorpGames      int
	MatchedGames   int
	UnmatchedGames int
	Coverage       float64 // MatchedGames / TotalGames
}

// UploadSource summarizes one merged file for display.
type UploadSource struct {
	FileName   string
	Username   string // detected viewer of that file, empty if none
	TotalGames int
}

// IdentityStat is one row of a categorical win-rate aggregate.
type IdentityStat struct {
	Role     Role
	Identity string
	Faction  string
	Wins     int
	Losses   int
	Total    int
	WinRate  float64
}

// DifferentialPoint is one completed game on the cumulative win/loss walk.
type DifferentialPoint struct {
	Date       time.Time
	Cumulative int
	Delta      int // +1 win, -1 loss
	DidWin     bool
	Role       Role
}

// DifferentialCandle aggregates the differential points of one time bucket.
type DifferentialCandle struct {
	Start time.Time
	End   time.Time
	Open  int
	Close int
	High  int
	Low   int
}

// RollingWinRatePoint reports the trailing-window win rate at one game.
// Total is the true sample count, smaller than the window while warming up.
type RollingWinRatePoint struct {
	Date    time.Time
	WinRate float64
	Wins    int
	Total   int
}

// WinLossBucket is one integer-keyed histogram bucket (unique accesses,
// turn counts).
type WinLossBucket struct {
	Value  int
	Wins   int
	Losses int
	Total  int
}

// GamesPlayedBucket counts games per calendar period. Draws are games
// without a recorded winner.
type GamesPlayedBucket struct {
	Start  time.Time
	Label  string
	Wins   int
	Losses int
	Draws  int
	Total  int
}

// KnownRange is a named historical period for one format.
type KnownRange struct {
	Label string
	Start time.Time
	End   time.Time
}

// Filters narrow the differential timeline. Zero values mean inactive;
// all active filters are ANDed.
type Filters struct {
	Format   string
	Side     Role
	Faction  string
	Identity string
}
