package components

import "github.com/yohamta/donburi"

// AutoDestroyData removes an effect entity once its timer runs out or its
// animation has played through.
type AutoDestroyData struct {
	SecondsRemaining  float64 // ignored when <= 0
	DestroyOnAnimLoop bool
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
