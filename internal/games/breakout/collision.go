package breakout

// Collisions are resolved one axis at a time: the ball is moved along X and
// checked, then along Y and checked. A contact found during the X pass can
// only be a side hit, a contact found during the Y pass only a top/bottom hit.

// ResolveAxisX separates mover from obstacle after an X displacement caused
// them to overlap, and reflects the X velocity.
// A mover whose right edge lies strictly inside the obstacle came from the
// left and is snapped against the obstacle's left edge; anything else is
// snapped against the right edge.
func ResolveAxisX(mover *Rect, v *Velocity, obstacle Rect) {
	if mover.Right() > obstacle.Left() && mover.Right() < obstacle.Right() {
		mover.SetRight(obstacle.Left())
	} else {
		mover.SetLeft(obstacle.Right())
	}
	v.DX = -v.DX
}

// ResolveAxisY rolls back the last Y displacement and reflects the Y velocity.
func ResolveAxisY(mover *Rect, v *Velocity) {
	mover.Y -= v.DY
	v.DY = -v.DY
}

// squeezed reports whether the ball shares vertical span with the paddle while
// sticking out of the boundary sideways. This happens when the paddle pins
// the ball against a side wall.
func squeezed(ball, paddle, boundary Rect) bool {
	verticalOverlap := ball.Bottom() > paddle.Top() && ball.Top() < paddle.Bottom()
	outside := ball.Right() > boundary.Right() || ball.Left() < boundary.Left()
	return verticalOverlap && outside
}

// ResolveSqueeze lifts a pinned ball on top of the paddle and reports whether
// it did so. The ball velocity is left untouched.
func ResolveSqueeze(ball *Ball, paddle *Paddle, boundary Rect) bool {
	if !squeezed(ball.Rect, paddle.Rect, boundary) {
		return false
	}
	ball.PlaceOn(paddle)
	clampHorizontal(&ball.Rect, boundary)
	return true
}

// containHorizontal pulls a ball that ended a pass outside the side walls back
// in, pointing its X velocity inward. Speed magnitude is preserved.
func containHorizontal(ball *Ball, boundary Rect) {
	switch {
	case ball.Rect.Left() < boundary.Left():
		ball.Rect.SetLeft(boundary.Left())
		if ball.Velocity.DX < 0 {
			ball.Velocity.DX = -ball.Velocity.DX
		}
	case ball.Rect.Right() > boundary.Right():
		ball.Rect.SetRight(boundary.Right())
		if ball.Velocity.DX > 0 {
			ball.Velocity.DX = -ball.Velocity.DX
		}
	}
}

// clampHorizontal keeps r between the boundary side walls.
func clampHorizontal(r *Rect, boundary Rect) {
	if r.Left() < boundary.Left() {
		r.SetLeft(boundary.Left())
	} else if r.Right() > boundary.Right() {
		r.SetRight(boundary.Right())
	}
}
