package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/renderer"
)

// loadSprite loads a texture and wraps it in a sprite with its intrinsic size.
func loadSprite(atlas renderer.Atlas, path string, anchor components.Anchor) (components.Sprite, error) {
	tex, err := atlas.Load(path)
	if err != nil {
		return components.Sprite{}, err
	}
	return components.NewSprite(tex.ID, tex.Width, tex.Height, anchor), nil
}

// spawnGears creates the single driven gear, or the driver and driven pair
// when meshing is enabled.
func (g *Game) spawnGears(atlas renderer.Atlas) error {
	cfg := g.cfg
	sprite, err := loadSprite(atlas, cfg.Assets.Gear.Path, components.AnchorCenter)
	if err != nil {
		return err
	}

	pos := components.Position{
		X: (cfg.Derived.ScreenW32-sprite.Width)/2 + float32(cfg.Gear.OffsetX),
		Y: (cfg.Derived.ScreenH32 - sprite.Height) / 2,
	}
	spin := components.Spin{
		Friction: float32(cfg.Gear.Friction),
		MaxSpeed: float32(cfg.Gear.MaxRotation),
	}

	if !cfg.Mesh.Enabled {
		gears := ecs.NewMap5[components.Position, components.Sprite, components.Spin, components.Drivable, components.Scored](g.world)
		g.driver = gears.NewEntity(&pos, &sprite, &spin, &components.Drivable{}, &components.Scored{})
		g.scored = g.driver
		g.hasGear = true
		return nil
	}

	drivers := ecs.NewMap6[components.Position, components.Sprite, components.Spin, components.Drivable, components.Teeth, components.Label](g.world)
	g.driver = drivers.NewEntity(
		&pos,
		&sprite,
		&spin,
		&components.Drivable{},
		&components.Teeth{Count: float32(cfg.Mesh.DriverTeeth)},
		&components.Label{Text: cfg.Mesh.DriverLabel},
	)

	drivenPos := components.Position{X: pos.X + float32(cfg.Mesh.Spacing), Y: pos.Y}
	drivenSprite := sprite
	drivenSprite.Scale = float32(1 / cfg.Ratio())

	drivens := ecs.NewMap7[components.Position, components.Sprite, components.Spin, components.Teeth, components.Mesh, components.Label, components.Scored](g.world)
	g.scored = drivens.NewEntity(
		&drivenPos,
		&drivenSprite,
		&components.Spin{},
		&components.Teeth{Count: float32(cfg.Mesh.DrivenTeeth)},
		&components.Mesh{Driver: g.driver},
		&components.Label{Text: cfg.Mesh.DrivenLabel},
		&components.Scored{},
	)
	g.hasGear = true
	return nil
}

// spawnPong creates both paddles at the side margins and the ball in the
// middle, moving towards player 1.
func (g *Game) spawnPong(atlas renderer.Atlas) error {
	cfg := g.cfg
	paddleSprite, err := loadSprite(atlas, cfg.Assets.Paddle.Path, components.AnchorTopLeft)
	if err != nil {
		return err
	}
	ballSprite, err := loadSprite(atlas, cfg.Assets.Ball.Path, components.AnchorTopLeft)
	if err != nil {
		return err
	}

	w, h := cfg.Derived.ScreenW32, cfg.Derived.ScreenH32
	margin := float32(cfg.Pong.PaddleMargin)
	paddleY := (h - paddleSprite.Height) / 2

	paddles := ecs.NewMap3[components.Position, components.Sprite, components.Paddle](g.world)
	for i, x := range []float32{margin, w - margin - paddleSprite.Width} {
		keys := cfg.Derived.Keys[i]
		paddles.NewEntity(
			&components.Position{X: x, Y: paddleY},
			&paddleSprite,
			&components.Paddle{
				Player: i + 1,
				Up:     keys.Up,
				Down:   keys.Down,
				Speed:  float32(cfg.Pong.PaddleSpeed),
			},
		)
	}

	balls := ecs.NewMap4[components.Position, components.Velocity, components.Sprite, components.Ball](g.world)
	g.ballE = balls.NewEntity(
		&components.Position{X: w / 2, Y: (h - ballSprite.Height) / 2},
		&components.Velocity{X: -float32(cfg.Pong.BallSpeed)},
		&ballSprite,
		&components.Ball{
			Acceleration: float32(cfg.Pong.Acceleration),
			Spin:         float32(cfg.Pong.Spin),
		},
	)
	g.hasBall = true
	return nil
}
