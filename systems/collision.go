package systems

import "github.com/pthm-cable/ratio/components"

// Winner identifies which player, if any, has won the rally.
type Winner uint8

const (
	NoWinner Winner = iota
	Player1
	Player2
)

// String returns a log-friendly name.
func (w Winner) String() string {
	switch w {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "none"
	}
}

// sign returns -1, 0 or 1.
func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// PaddleOffset is how far the paddle's center sits below the ball's center,
// in paddle heights. Edge hits can exceed ±1.
func PaddleOffset(ball, paddle components.Rect) float32 {
	if paddle.Height == 0 {
		return 0
	}
	return (paddle.CenterY() - ball.CenterY()) / paddle.Height
}

// PaddleBounce returns the ball velocity after a paddle hit. The horizontal
// component flips and grows by acceleration; the vertical component picks up
// spin away from the paddle's center.
func PaddleBounce(vel components.Velocity, ball, paddle components.Rect, tuning components.Ball) components.Velocity {
	vel.X = -vel.X
	vel.X += tuning.Acceleration * sign(vel.X)
	vel.Y += tuning.Spin * -PaddleOffset(ball, paddle)
	return vel
}

// WallBounce flips the vertical velocity when the ball touches or crosses the
// top or bottom edge. It reports whether a bounce happened.
func WallBounce(vel components.Velocity, ball components.Rect, height float32) (components.Velocity, bool) {
	if ball.Top() <= 0 || ball.Bottom() >= height {
		vel.Y = -vel.Y
		return vel, true
	}
	return vel, false
}

// CheckWinner reports the winner for a ball at x in a scene of the given width.
func CheckWinner(x, width float32) Winner {
	switch {
	case x < 0:
		return Player2
	case x > width:
		return Player1
	default:
		return NoWinner
	}
}
