package main

import (
	"flag"
	"image"

	"github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/fonts"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable
	logging.SetLogger(logger)

	if err := config.Load(*configPath); err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := fonts.LoadDefaults(config.Overlay.FontSize); err != nil {
		logger.Fatal("Failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang")
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting",
		zap.String("immortal_key", config.Debug.ImmortalKey),
		zap.String("hurt_key", config.Debug.HurtKey),
	)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("Game exited with error", zap.Error(err))
	}
}
