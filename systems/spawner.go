package systems

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WeightedChoice is one candidate of a weighted draw.
type WeightedChoice struct {
	Type   cfg.EnemyType
	Weight float64
}

// EnemySpawnWeights returns the static tier weights in scan order.
func EnemySpawnWeights() []WeightedChoice {
	choices := make([]WeightedChoice, 0, len(cfg.EnemyTypes))
	for _, t := range cfg.EnemyTypes {
		choices = append(choices, WeightedChoice{Type: t, Weight: t.Config().SpawnWeight})
	}
	return choices
}

// TotalWeight sums the candidate weights.
func TotalWeight(choices []WeightedChoice) float64 {
	total := 0.0
	for _, c := range choices {
		total += c.Weight
	}
	return total
}

// SelectWeighted walks the candidates in order and returns the first whose
// weight is at least roll, falling back to the small tier. This is a linear
// threshold scan, not a cumulative walk; it favours earlier candidates.
func SelectWeighted(choices []WeightedChoice, roll float64) cfg.EnemyType {
	for _, c := range choices {
		if roll <= c.Weight {
			return c.Type
		}
	}
	return cfg.EnemySmall
}

// RollEnemyType draws a uniform roll in [0, total) and applies SelectWeighted.
// An empty or zero weight table yields false.
func RollEnemyType(rng components.Rand, choices []WeightedChoice) (cfg.EnemyType, bool) {
	total := TotalWeight(choices)
	if rng == nil || len(choices) == 0 || total <= 0 {
		return cfg.EnemySmall, false
	}
	return SelectWeighted(choices, rng.Float64()*total), true
}

// ShouldSpawnEnemy applies the population cap and the per-tick chance gate.
func ShouldSpawnEnemy(rng components.Rand, live int) bool {
	if rng == nil || live >= cfg.Spawn.MaxEnemies || cfg.Spawn.Denominator <= 0 {
		return false
	}
	return rng.IntN(cfg.Spawn.Denominator) <= cfg.Spawn.Chance
}

// EnemySpawnPosition picks a random column across the viewport and returns
// the point just above the top edge where the enemy enters.
func EnemySpawnPosition(rng components.Rand, enemyType cfg.EnemyType, width, height float64) (gamemath.Vector2, bool) {
	if rng == nil || width <= 0 || height <= 0 {
		return gamemath.Vector2{}, false
	}
	w, _ := enemyType.Config().Size()
	columns := gamemath.ColumnCount(width, w, cfg.Spawn.Gutter)
	if columns < 1 {
		return gamemath.Vector2{}, false
	}
	column := rng.IntN(columns)
	x := gamemath.ColumnX(column, width, w, cfg.Spawn.Gutter)
	return gamemath.Vec(x, height/2+w/2), true
}

// UpdateSpawner decides whether one enemy enters this tick.
func UpdateSpawner(e *ecs.ECS) {
	SpawnEnemy(e)
}

// SpawnEnemy runs the spawn gates once and spawns at most one enemy. Every
// failed gate is a silent no-op.
func SpawnEnemy(e *ecs.ECS) (*donburi.Entry, bool) {
	vp := GetViewport(e)
	if !vp.Valid() {
		return nil, false
	}
	rng := getRandom(e)
	count := GetEnemyCount(e)
	if !ShouldSpawnEnemy(rng, count.Total()) {
		return nil, false
	}
	enemyType, ok := RollEnemyType(rng, EnemySpawnWeights())
	if !ok {
		zap.L().Debug("enemy spawn skipped: empty weight table")
		return nil, false
	}
	pos, ok := EnemySpawnPosition(rng, enemyType, vp.Width, vp.Height)
	if !ok {
		return nil, false
	}
	return factory.CreateEnemy(e, enemyType, pos), true
}
