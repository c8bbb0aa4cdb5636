package breakout

import "testing"

func TestResolveAxisXFromLeft(t *testing.T) {
	// Ball moving right at 2 units per tick overlaps the paddle's left edge.
	paddle := NewRect(100, 300, 65, 20)
	ball := NewRect(87, 305, 15, 15)
	v := Velocity{DX: 2, DY: -2}

	ResolveAxisX(&ball, &v, paddle)

	if ball.Right() != paddle.Left() {
		t.Errorf("ball right = %v, expected %v", ball.Right(), paddle.Left())
	}
	if v.DX != -2 {
		t.Errorf("DX = %v, expected -2", v.DX)
	}
	if v.DY != -2 {
		t.Errorf("DY = %v, expected unchanged -2", v.DY)
	}
	if ball.Intersects(paddle) {
		t.Error("ball should no longer overlap the paddle")
	}
}

func TestResolveAxisXFromRight(t *testing.T) {
	obstacle := NewRect(100, 300, 65, 20)

	tests := []struct {
		name string
		x    float64
	}{
		{"right edge beyond obstacle", 160},
		{"right edge flush with obstacle right", 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := NewRect(tc.x, 305, 15, 15)
			v := Velocity{DX: -3, DY: 1}

			ResolveAxisX(&ball, &v, obstacle)

			if ball.Left() != obstacle.Right() {
				t.Errorf("ball left = %v, expected %v", ball.Left(), obstacle.Right())
			}
			if v.DX != 3 {
				t.Errorf("DX = %v, expected 3", v.DX)
			}
		})
	}
}

func TestResolveAxisY(t *testing.T) {
	ball := NewRect(50, 100, 15, 15)
	v := Velocity{DX: 1, DY: 3}

	ResolveAxisY(&ball, &v)

	if ball.Y != 97 {
		t.Errorf("Y = %v, expected 97", ball.Y)
	}
	if v.DY != -3 || v.DX != 1 {
		t.Errorf("velocity = %+v, expected {1 -3}", v)
	}
}

func TestResolveSqueeze(t *testing.T) {
	boundary := NewRect(0, 45, 700, 500)

	tests := []struct {
		name      string
		paddle    Rect
		ball      Rect
		squeezed  bool
		expectedX float64
	}{
		{"pinned at right wall", NewRect(640, 375, 60, 20), NewRect(695, 380, 15, 15), true, 662.5},
		{"pinned at left wall", NewRect(0, 375, 60, 20), NewRect(-10, 380, 15, 15), true, 22.5},
		{"paddle past the wall", NewRect(690, 375, 65, 20), NewRect(700, 380, 15, 15), true, 685},
		{"outside but above paddle", NewRect(640, 375, 60, 20), NewRect(695, 300, 15, 15), false, 695},
		{"beside paddle but inside", NewRect(300, 375, 60, 20), NewRect(280, 380, 15, 15), false, 280},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paddle := Paddle{Rect: tc.paddle, Speed: 5}
			ball := Ball{Rect: tc.ball, Velocity: Velocity{DX: 2, DY: -2}}

			got := ResolveSqueeze(&ball, &paddle, boundary)

			if got != tc.squeezed {
				t.Fatalf("ResolveSqueeze() = %v, expected %v", got, tc.squeezed)
			}
			if ball.Rect.X != tc.expectedX {
				t.Errorf("ball X = %v, expected %v", ball.Rect.X, tc.expectedX)
			}
			if tc.squeezed && ball.Rect.Bottom() != paddle.Rect.Top() {
				t.Errorf("ball bottom = %v, expected paddle top %v", ball.Rect.Bottom(), paddle.Rect.Top())
			}
			if ball.Velocity != (Velocity{DX: 2, DY: -2}) {
				t.Errorf("velocity changed to %+v", ball.Velocity)
			}
		})
	}
}

func TestContainHorizontal(t *testing.T) {
	boundary := NewRect(0, 45, 700, 500)

	tests := []struct {
		name       string
		x          float64
		dx         float64
		expectedX  float64
		expectedDX float64
	}{
		{"left and moving out", -3, -2, 0, 2},
		{"left and already moving in", -3, 2, 0, 2},
		{"right and moving out", 690, 2, 685, -2},
		{"right and already moving in", 690, -2, 685, -2},
		{"inside", 300, 2, 300, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := Ball{Rect: NewRect(tc.x, 200, 15, 15), Velocity: Velocity{DX: tc.dx, DY: -2}}
			containHorizontal(&ball, boundary)
			if ball.Rect.X != tc.expectedX {
				t.Errorf("X = %v, expected %v", ball.Rect.X, tc.expectedX)
			}
			if ball.Velocity.DX != tc.expectedDX {
				t.Errorf("DX = %v, expected %v", ball.Velocity.DX, tc.expectedDX)
			}
		})
	}
}
