package components

import "github.com/yohamta/donburi"

// HealthData may go to zero or below within a tick; the combat sweep removes
// such entities before the tick ends.
type HealthData struct {
	Current   int
	Max       int
	LastHitBy DestroyCause
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

var Health = donburi.NewComponentType[HealthData]()
