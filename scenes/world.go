package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/doomerang-immortal/config"
	"github.com/automoto/doomerang-immortal/logging"
	"github.com/automoto/doomerang-immortal/systems"
	"github.com/automoto/doomerang-immortal/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates the playing scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsGameOver(ps.ecs) {
		// Transient UI does not outlive the playing state.
		n := systems.CleanupUI(ps.ecs)
		logging.L().Info("game over", zap.Int("ui_nodes_reclaimed", n))
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	systems.AddGameplaySystems(ecs)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	width, height := cfg.C.Width, cfg.C.Height
	factory.CreateSpace(ps.ecs, width, height, 16, 16)

	// Hazard strip on the floor to the right of the spawn point
	factory.CreateHazard(ps.ecs, cfg.Player.SpawnX+96, cfg.Player.SpawnY+8, 64, 32)

	factory.CreatePlayer(ps.ecs, cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.StartingLives)
}
