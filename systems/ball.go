package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
)

// BallReport summarizes the contacts resolved in one frame.
type BallReport struct {
	PaddleHits  []int // player number of each paddle hit
	WallBounces int
}

type paddleBox struct {
	player int
	bounds components.Rect
}

// BallSystem resolves ball contacts with paddles and the top and bottom walls.
type BallSystem struct {
	balls   *ecs.Filter4[components.Position, components.Velocity, components.Sprite, components.Ball]
	paddles *ecs.Filter3[components.Position, components.Sprite, components.Paddle]
	bounds  Bounds

	boxes []paddleBox
}

// NewBallSystem creates a new ball system.
func NewBallSystem(w *ecs.World, bounds Bounds) *BallSystem {
	return &BallSystem{
		balls:   ecs.NewFilter4[components.Position, components.Velocity, components.Sprite, components.Ball](w),
		paddles: ecs.NewFilter3[components.Position, components.Sprite, components.Paddle](w),
		bounds:  bounds,
	}
}

// Update resolves contacts against the ball's current bounds. At most one
// paddle is hit per frame: paddles are tried in player order and the first
// overlap wins. The wall check runs regardless of a paddle hit.
func (s *BallSystem) Update() BallReport {
	s.collectPaddles()

	var report BallReport
	query := s.balls.Query()
	for query.Next() {
		pos, vel, sprite, ball := query.Get()
		box := components.Bounds(*pos, *sprite)

		for _, p := range s.boxes {
			if box.Intersects(p.bounds) {
				*vel = PaddleBounce(*vel, box, p.bounds, *ball)
				report.PaddleHits = append(report.PaddleHits, p.player)
				break
			}
		}

		var bounced bool
		*vel, bounced = WallBounce(*vel, box, s.bounds.Height)
		if bounced {
			report.WallBounces++
		}
	}
	return report
}

// Winner checks every ball against the left and right edges.
func (s *BallSystem) Winner() Winner {
	winner := NoWinner
	query := s.balls.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		if w := CheckWinner(pos.X, s.bounds.Width); w != NoWinner && winner == NoWinner {
			winner = w
		}
	}
	return winner
}

// collectPaddles snapshots paddle bounds in player order.
func (s *BallSystem) collectPaddles() {
	s.boxes = s.boxes[:0]
	query := s.paddles.Query()
	for query.Next() {
		pos, sprite, paddle := query.Get()
		s.boxes = append(s.boxes, paddleBox{player: paddle.Player, bounds: components.Bounds(*pos, *sprite)})
	}
	sort.Slice(s.boxes, func(i, j int) bool {
		return s.boxes[i].player < s.boxes[j].player
	})
}
