package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/fonts"
	"github.com/automoto/starshooter/scenes"
	"github.com/automoto/starshooter/shared/logging"
	"github.com/automoto/starshooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.Options) *Game {
	return &Game{scene: scenes.NewGameScene(opts)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Uint64("seed", 0, "spawn RNG seed (0 picks one from the clock)")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	debug := flag.Bool("debug", false, "debug logging and collision box overlay")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		return err
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.DrawBounds = *debug
	settings.Apply()

	level := settings.LogLevel
	if *debug {
		level = "debug"
	}
	logger, err := logging.New(level, *debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	highScore := 0
	if err := systems.InitPersistence("starshooter"); err != nil {
		zap.L().Warn("could not initialize persistence", zap.Error(err))
	} else if highScore, err = systems.LoadHighScore(); err != nil {
		zap.L().Warn("could not load high score", zap.Error(err))
	}

	s := settings.Seed
	if *seed != 0 {
		s = *seed
	}
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	zap.L().Info("starting",
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.Uint64("seed", s),
		zap.Stringer("collision_policy", config.Combat.Policy),
		zap.Int("high_score", highScore),
	)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Starshooter")
	ebiten.SetTPS(config.C.TPS)

	err = ebiten.RunGame(NewGame(scenes.Options{
		Seed:      s,
		HighScore: highScore,
		SkipMenu:  config.Debug.SkipMenu,
	}))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	zap.L().Info("exiting")
	return nil
}
