package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ErrPersistenceUnavailable is returned when no store has been opened.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

const highScoreItem = "highscore"

// ItemStore is the subset of gdata.Manager used for saving records.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedRecord is the data stored on disk between runs.
type SavedRecord struct {
	HighScore int `json:"highScore"`
}

var store ItemStore

// InitPersistence opens the gdata store for the given app name.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata store: %w", err)
	}
	store = m
	return nil
}

// SetStore replaces the active store. A nil store disables persistence.
func SetStore(s ItemStore) {
	store = s
}

// LoadHighScore reads the stored high score. A missing record is 0.
func LoadHighScore() (int, error) {
	if store == nil {
		return 0, ErrPersistenceUnavailable
	}
	data, err := store.LoadItem(highScoreItem)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", highScoreItem, err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	var rec SavedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("parse %s: %w", highScoreItem, err)
	}
	return rec.HighScore, nil
}

// SaveHighScore writes the session high score if it beats the stored one.
// Failures are logged and the game carries on.
func SaveHighScore(e *ecs.ECS) {
	score := GetScore(e)
	if score.HighScore <= score.Persisted {
		return
	}
	if store == nil {
		return
	}
	data, err := json.Marshal(SavedRecord{HighScore: score.HighScore})
	if err != nil {
		zap.L().Warn("could not serialize high score", zap.Error(err))
		return
	}
	if err := store.SaveItem(highScoreItem, data); err != nil {
		zap.L().Warn("could not save high score", zap.Error(err))
		return
	}
	score.Persisted = score.HighScore
	zap.L().Info("high score saved", zap.Int("high_score", score.HighScore))
}
