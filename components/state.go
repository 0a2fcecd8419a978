package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.PlayerStateID
	PreviousState cfg.PlayerStateID
}

var State = donburi.NewComponentType[StateData]()
