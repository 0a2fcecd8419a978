package config

// GameStateID is the top-level run state.
type GameStateID int

const (
	GameStateReady GameStateID = iota
	GameStatePlaying
	GameStatePaused
	GameStateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case GameStateReady:
		return "ready"
	case GameStatePlaying:
		return "playing"
	case GameStatePaused:
		return "paused"
	case GameStateGameOver:
		return "game-over"
	}
	return "unknown"
}

// PlayerStateID drives the player ship animation.
type PlayerStateID int

const (
	PlayerIdle PlayerStateID = iota
	PlayerMovingLeft
	PlayerMovingRight
)

func (s PlayerStateID) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerMovingLeft:
		return "moving-left"
	case PlayerMovingRight:
		return "moving-right"
	}
	return "unknown"
}

// StarSpeed is a background scroll preset.
type StarSpeed int

const (
	StarSpeedStop StarSpeed = iota
	StarSpeedSlow
	StarSpeedFast
)

// GameSignal is a one-shot request consumed by the game state system.
type GameSignal int

const (
	SignalStart GameSignal = iota
	SignalTogglePause
	SignalRestart
	SignalQuit
)
