package systems

import (
	"testing"

	cfg "github.com/automoto/starshooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWeighted(t *testing.T) {
	choices := EnemySpawnWeights()
	require.Len(t, choices, 3)
	assert.InDelta(t, 8.5, TotalWeight(choices), 1e-9)

	tests := []struct {
		name string
		roll float64
		want cfg.EnemyType
	}{
		{"below the large weight", 0.05, cfg.EnemyLarge},
		{"at the large weight", 0.1, cfg.EnemyLarge},
		{"below the medium weight", 0.3, cfg.EnemyMedium},
		{"below the small weight", 5, cfg.EnemySmall},
		{"above every weight falls back to small", 8.4, cfg.EnemySmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectWeighted(choices, tt.roll))
		})
	}
}

func TestSelectWeightedScansInOrder(t *testing.T) {
	choices := []WeightedChoice{
		{Type: cfg.EnemyMedium, Weight: 5},
		{Type: cfg.EnemyLarge, Weight: 1},
	}
	assert.Equal(t, cfg.EnemyMedium, SelectWeighted(choices, 0.5))
	assert.Equal(t, cfg.EnemySmall, SelectWeighted(choices, 5.5))
}

func TestRollEnemyType(t *testing.T) {
	_, ok := RollEnemyType(nil, EnemySpawnWeights())
	assert.False(t, ok)

	_, ok = RollEnemyType(&scriptedRand{}, nil)
	assert.False(t, ok)

	_, ok = RollEnemyType(&scriptedRand{}, []WeightedChoice{{Type: cfg.EnemyLarge, Weight: 0}})
	assert.False(t, ok)

	got, ok := RollEnemyType(&scriptedRand{floats: []float64{0}}, EnemySpawnWeights())
	require.True(t, ok)
	assert.Equal(t, cfg.EnemyLarge, got)

	got, ok = RollEnemyType(&scriptedRand{floats: []float64{0.5}}, EnemySpawnWeights())
	require.True(t, ok)
	assert.Equal(t, cfg.EnemySmall, got)
}

func TestShouldSpawnEnemy(t *testing.T) {
	assert.True(t, ShouldSpawnEnemy(&scriptedRand{ints: []int{0}}, 0))
	assert.True(t, ShouldSpawnEnemy(&scriptedRand{ints: []int{1}}, 0))
	assert.False(t, ShouldSpawnEnemy(&scriptedRand{ints: []int{2}}, 0))
	assert.False(t, ShouldSpawnEnemy(&scriptedRand{}, cfg.Spawn.MaxEnemies))
	assert.False(t, ShouldSpawnEnemy(nil, 0))
}

func TestEnemySpawnPosition(t *testing.T) {
	_, ok := EnemySpawnPosition(&scriptedRand{}, cfg.EnemySmall, 0, testHeight)
	assert.False(t, ok)
	_, ok = EnemySpawnPosition(&scriptedRand{}, cfg.EnemySmall, testWidth, 0)
	assert.False(t, ok)
	_, ok = EnemySpawnPosition(&scriptedRand{}, cfg.EnemySmall, 10, testHeight)
	assert.False(t, ok, "narrower than one column")

	pos, ok := EnemySpawnPosition(&scriptedRand{ints: []int{0}}, cfg.EnemySmall, testWidth, testHeight)
	require.True(t, ok)
	assert.InDelta(t, -608, pos.X, 1e-9)
	assert.InDelta(t, 377, pos.Y, 1e-9)
}

func TestSpawnEnemy(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 0}, floats: []float64{0.9}}
	e := newTestECS(t, worldOptions{state: cfg.GameStatePlaying, rng: rng})

	entry, ok := SpawnEnemy(e)
	require.True(t, ok)
	require.NotNil(t, entry)
	assert.Equal(t, 1, GetEnemyCount(e).Small)
	assert.Equal(t, 1, countEnemies(e))
}

func TestSpawnEnemyRespectsCap(t *testing.T) {
	e := newPlayingECS(t)
	GetEnemyCount(e).Small = cfg.Spawn.MaxEnemies

	_, ok := SpawnEnemy(e)
	assert.False(t, ok)
	assert.Zero(t, countEnemies(e))
}

func TestSpawnEnemyZeroViewport(t *testing.T) {
	e := newPlayingECS(t)
	Advance(e, 1.0/60, 0, 0)

	assert.NotPanics(t, func() { UpdateSpawner(e) })
	assert.Zero(t, countEnemies(e))
}
