package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when a settings file parses but holds
// values the game cannot run with.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the optional user settings file.
type Settings struct {
	Window          WindowSettings `yaml:"window"`
	MusicVolume     *float64       `yaml:"music_volume"`
	EffectVolume    *float64       `yaml:"effect_volume"`
	CollisionPolicy string         `yaml:"collision_policy"`
	MaxEnemies      int            `yaml:"max_enemies"`
	MaxPowerups     int            `yaml:"max_powerups"`
	SkipMenu        bool           `yaml:"skip_menu"`
	Seed            uint64         `yaml:"seed"`
	LogLevel        string         `yaml:"log_level"`
}

type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoadSettings reads a YAML settings file. An empty path yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Window.Width == 0 {
		s.Window.Width = C.Width
	}
	if s.Window.Height == 0 {
		s.Window.Height = C.Height
	}
	if s.MusicVolume == nil {
		v := Audio.DefaultMusicVol
		s.MusicVolume = &v
	}
	if s.EffectVolume == nil {
		v := Audio.DefaultSFXVol
		s.EffectVolume = &v
	}
	if s.CollisionPolicy == "" {
		s.CollisionPolicy = Combat.Policy.String()
	}
	if s.MaxEnemies == 0 {
		s.MaxEnemies = Spawn.MaxEnemies
	}
	if s.MaxPowerups == 0 {
		s.MaxPowerups = Powerup.MaxPowerups
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
}

func (s *Settings) validate() error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	if *s.MusicVolume < 0 || *s.MusicVolume > 1 {
		return fmt.Errorf("%w: music_volume %v outside [0, 1]", ErrInvalidSettings, *s.MusicVolume)
	}
	if *s.EffectVolume < 0 || *s.EffectVolume > 1 {
		return fmt.Errorf("%w: effect_volume %v outside [0, 1]", ErrInvalidSettings, *s.EffectVolume)
	}
	if _, err := ParseCollisionPolicy(s.CollisionPolicy); err != nil {
		return err
	}
	if s.MaxEnemies < 0 || s.MaxPowerups < 0 {
		return fmt.Errorf("%w: negative population cap", ErrInvalidSettings)
	}
	return nil
}

// Apply copies the settings onto the global configuration.
func (s *Settings) Apply() {
	C.Width = s.Window.Width
	C.Height = s.Window.Height
	Audio.DefaultMusicVol = *s.MusicVolume
	Audio.DefaultSFXVol = *s.EffectVolume
	if p, err := ParseCollisionPolicy(s.CollisionPolicy); err == nil {
		Combat.Policy = p
	}
	Spawn.MaxEnemies = s.MaxEnemies
	Powerup.MaxPowerups = s.MaxPowerups
	Debug.SkipMenu = Debug.SkipMenu || s.SkipMenu
}

// ParseCollisionPolicy maps the settings spelling onto a policy.
func ParseCollisionPolicy(name string) (CollisionPolicy, error) {
	switch name {
	case CollisionMutualDamage.String():
		return CollisionMutualDamage, nil
	case CollisionInstantGameOver.String():
		return CollisionInstantGameOver, nil
	}
	return CollisionMutualDamage, fmt.Errorf("%w: unknown collision_policy %q", ErrInvalidSettings, name)
}
