package systems

import (
	"github.com/automoto/starshooter/components"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateScoring consumes this tick's DestroyedEvents. Each one gets an
// explosion; enemies award their tier score and may drop a powerup.
func UpdateScoring(e *ecs.ECS) {
	events := GetEvents(e)
	if len(events.Destroyed) == 0 {
		return
	}
	score := GetScore(e)

	for _, ev := range events.Destroyed {
		factory.SpawnExplosion(e, ev.Position)
		if ev.Player {
			continue
		}
		zap.L().Debug("enemy destroyed",
			zap.Stringer("type", ev.EnemyType),
			zap.Stringer("cause", ev.Cause),
		)

		conf := ev.EnemyType.Config()
		AwardScore(score, conf.Score)
		if conf.HasDrop {
			TrySpawnPowerup(e, conf.Drop, ev.Position)
		}
	}
}

// AwardScore adds points and raises the high score when beaten.
func AwardScore(score *components.ScoreData, points int) {
	score.Value += points
	if score.Value > score.HighScore {
		score.HighScore = score.Value
	}
}
