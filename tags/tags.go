package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Bullet    = donburi.NewTag().SetName("Bullet")
	Powerup   = donburi.NewTag().SetName("Powerup")
	Explosion = donburi.NewTag().SetName("Explosion")
	Session   = donburi.NewTag().SetName("Session")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvBullet  = "Bullet"
	ResolvPowerup = "Powerup"
)
