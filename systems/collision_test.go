package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/ratio/components"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestPaddleBounce(t *testing.T) {
	paddle := components.Rect{X: 32, Y: 300, Width: 16, Height: 96} // center y = 348
	tuning := components.Ball{Acceleration: 0.5, Spin: 4}

	tests := []struct {
		name   string
		offset float32 // paddle heights the paddle center sits below the ball center
		vel    components.Velocity
		want   components.Velocity
	}{
		{"center hit", 0, components.Velocity{X: -5, Y: 0}, components.Velocity{X: 5.5, Y: 0}},
		{"ball above center", 1, components.Velocity{X: -5, Y: 0}, components.Velocity{X: 5.5, Y: -4}},
		{"ball below center", -1, components.Velocity{X: -5, Y: 0}, components.Velocity{X: 5.5, Y: 4}},
		{"rightward ball", 0, components.Velocity{X: 5, Y: 1}, components.Velocity{X: -5.5, Y: 1}},
		{"rightward ball above center", 1, components.Velocity{X: 5, Y: 0}, components.Velocity{X: -5.5, Y: -4}},
		{"rightward ball below center", -1, components.Velocity{X: 5, Y: 0}, components.Velocity{X: -5.5, Y: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ballCenter := paddle.CenterY() - tc.offset*paddle.Height
			ball := components.Rect{X: 40, Y: ballCenter - 8, Width: 16, Height: 16}

			if got := PaddleOffset(ball, paddle); !approx(got, tc.offset) {
				t.Fatalf("PaddleOffset = %v, want %v", got, tc.offset)
			}

			got := PaddleBounce(tc.vel, ball, paddle, tuning)
			if !approx(got.X, tc.want.X) || !approx(got.Y, tc.want.Y) {
				t.Errorf("PaddleBounce = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPaddleBounceZeroVelocity(t *testing.T) {
	paddle := components.Rect{X: 0, Y: 0, Width: 16, Height: 96}
	ball := components.Rect{X: 0, Y: 40, Width: 16, Height: 16}
	got := PaddleBounce(components.Velocity{}, ball, paddle, components.Ball{Acceleration: 0.5})
	if got.X != 0 {
		t.Errorf("X = %v, want 0 (sign of zero is zero)", got.X)
	}
}

func TestWallBounce(t *testing.T) {
	const height = 720

	tests := []struct {
		name    string
		y       float32
		vy      float32
		wantVY  float32
		bounced bool
	}{
		{"above top", -1, 3, -3, true},
		{"touching top", 0, -2, 2, true},
		{"touching bottom", height - 16, 2, -2, true},
		{"below bottom", height, 2, -2, true},
		{"mid screen", 300, 2, 2, false},
		{"just inside top", 0.5, -1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := components.Rect{X: 100, Y: tc.y, Width: 16, Height: 16}
			got, bounced := WallBounce(components.Velocity{X: 5, Y: tc.vy}, ball, height)
			if bounced != tc.bounced {
				t.Errorf("bounced = %v, want %v", bounced, tc.bounced)
			}
			if got.Y != tc.wantVY {
				t.Errorf("vy = %v, want %v", got.Y, tc.wantVY)
			}
			if got.X != 5 {
				t.Errorf("vx changed to %v", got.X)
			}
		})
	}
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		x    float32
		want Winner
	}{
		{-0.1, Player2},
		{0, NoWinner},
		{640, NoWinner},
		{1280, NoWinner},
		{1280.5, Player1},
	}
	for _, tc := range tests {
		if got := CheckWinner(tc.x, 1280); got != tc.want {
			t.Errorf("CheckWinner(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestWinnerString(t *testing.T) {
	if Player1.String() != "player 1" || Player2.String() != "player 2" || NoWinner.String() != "none" {
		t.Errorf("unexpected names: %q %q %q", Player1, Player2, NoWinner)
	}
}
