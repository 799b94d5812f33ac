// Package models defines the in-memory shapes shared by the coordinator,
// the store adapters, and the store server: games, players, locations and
// their encrypted at-rest forms.
package models

// GameStatus is the lifecycle state of a game. Transitions are monotonic:
// waiting -> active -> ended, with no way back out of ended.
type GameStatus string

const (
	StatusWaiting GameStatus = "waiting"
	StatusActive  GameStatus = "active"
	StatusEnded   GameStatus = "ended"
)

// Game is a session as seen by a coordinator, locations already decrypted.
// CurrentRadius is a cached projection of (Config, StartTime, now) and is
// never authoritative.
type Game struct {
	ID            string     `json:"id"`
	GameCode      string     `json:"gameCode"`
	HiderID       string     `json:"hiderId"`
	HiderName     string     `json:"hiderName"`
	HiderLocation *Location  `json:"hiderLocation"`
	CircleOffset  Location   `json:"circleOffset"`
	Status        GameStatus `json:"status"`
	Config        GameConfig `json:"config"`
	StartTime     int64      `json:"startTime"` // unix millis, 0 until started
	CurrentRadius float64    `json:"currentRadius"`
	CreatedAt     int64      `json:"createdAt"` // unix millis
}

// Player is a seeker's record within a game. Location is nil until the
// player reports a position.
type Player struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	Location    *Location `json:"location"`
	LastUpdated int64     `json:"lastUpdated"` // unix millis
	Found       bool      `json:"foundChicken"`
	JoinedAt    int64     `json:"joinedAt"` // unix millis
}

// Identity is the host-supplied opaque identity pair. The core performs no
// authentication of its own.
type Identity struct {
	UID         string
	DisplayName string
}
