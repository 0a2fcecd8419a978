package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type cfg.EnemyType
}

type BulletData struct {
	Damage int
}

type PowerupData struct {
	Type cfg.PowerupType
}

var Enemy = donburi.NewComponentType[EnemyData]()
var Bullet = donburi.NewComponentType[BulletData]()
var Powerup = donburi.NewComponentType[PowerupData]()
