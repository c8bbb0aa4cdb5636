package breakout

// Default gameplay rules.
const (
	DefaultScorePerBlock = 100
	DefaultSpeedUp       = 1.02
)

// Rules holds the scoring and difficulty-ramp constants of a level.
type Rules struct {
	ScorePerBlock int     // Points for each destroyed block
	SpeedUp       float64 // Ball velocity multiplier applied per destroyed block
	MaxBallSpeed  float64 // Cap on ball speed magnitude; 0 means uncapped
}

// DefaultRules returns the classic rules: 100 points and 2% speed-up per block.
func DefaultRules() Rules {
	return Rules{
		ScorePerBlock: DefaultScorePerBlock,
		SpeedUp:       DefaultSpeedUp,
	}
}

// GameState is the mutable status of a level.
type GameState struct {
	Score          int
	Lives          int
	BallReleased   bool
	GameOver       bool
	PlayerWon      bool
	LaunchVelocity Velocity // Fixed at creation, reused on every release
}

// Intent is the player's input for one tick.
type Intent struct {
	MoveLeft    bool
	MoveRight   bool
	ReleaseBall bool
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventBallReleased EventType = iota
	EventBlockDestroyed
	EventLifeLost
	EventGameOver
	EventPlayerWon
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventBallReleased:
		return "ball_released"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventPlayerWon:
		return "player_won"
	default:
		return "unknown"
	}
}

// Event is a gameplay state transition, reported with the score and lives
// current at the moment it happened.
type Event struct {
	Type  EventType
	Score int
	Lives int
}

// Level owns every entity of one game and advances them tick by tick.
// A Level is not safe for concurrent use; callers step and read it from a
// single goroutine.
type Level struct {
	boundary Rect
	paddle   Paddle
	ball     Ball
	blocks   []Block
	state    GameState
	rules    Rules
	events   []Event
}

// newLevel assembles a level and ties the ball to the paddle.
// Inputs are assumed to be validated by the factory.
func newLevel(boundary Rect, paddle Paddle, ball Ball, blocks []Block, lives int, launch Velocity, rules Rules) *Level {
	l := &Level{
		boundary: boundary,
		paddle:   paddle,
		ball:     ball,
		blocks:   blocks,
		rules:    rules,
		state: GameState{
			Lives:          lives,
			LaunchVelocity: launch,
		},
	}
	l.resetBall()
	return l
}

// Boundary returns the playfield rectangle.
func (l *Level) Boundary() Rect { return l.boundary }

// Paddle returns a copy of the paddle.
func (l *Level) Paddle() Paddle { return l.paddle }

// Ball returns a copy of the ball.
func (l *Level) Ball() Ball { return l.ball }

// Blocks returns a copy of the live blocks.
func (l *Level) Blocks() []Block {
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// BlockCount returns the number of live blocks.
func (l *Level) BlockCount() int { return len(l.blocks) }

// State returns a copy of the game state.
func (l *Level) State() GameState { return l.state }

// Finished reports whether the level reached game over or a win.
func (l *Level) Finished() bool {
	return l.state.GameOver || l.state.PlayerWon
}

// Step advances the level by one tick and returns what happened.
// A finished level is frozen: Step does nothing and returns nil.
func (l *Level) Step(in Intent) []Event {
	if l.Finished() {
		return nil
	}
	l.events = l.events[:0]

	l.advance(in)
	l.settle()

	if len(l.events) == 0 {
		return nil
	}
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// advance applies input and moves the ball one axis at a time.
func (l *Level) advance(in Intent) {
	l.applyInput(in)
	l.resolveX()
	l.resolveY()
}

// settle runs the end-of-tick corrections, cleanup and termination checks.
// Clamping the paddle may leave it overlapping the ball until the next X pass.
func (l *Level) settle() {
	l.correctBall()
	l.clampPaddle()
	l.collectDestroyed()
	l.checkTermination()
}

// ReleaseBall launches the ball with the level launch velocity.
// Calling it again while the ball is in play does nothing.
func (l *Level) ReleaseBall() {
	if l.state.BallReleased {
		return
	}
	l.state.BallReleased = true
	l.ball.Velocity = l.state.LaunchVelocity
	l.emit(EventBallReleased)
}

// resetBall ties the ball back to the paddle with zero velocity.
func (l *Level) resetBall() {
	l.ball.PlaceOn(&l.paddle)
	l.ball.Velocity = Velocity{}
	l.state.BallReleased = false
}

func (l *Level) emit(t EventType) {
	l.events = append(l.events, Event{Type: t, Score: l.state.Score, Lives: l.state.Lives})
}

// applyInput handles release and paddle movement. An unreleased ball follows
// the paddle every tick.
func (l *Level) applyInput(in Intent) {
	if in.ReleaseBall {
		l.ReleaseBall()
	}

	speed := l.paddle.Speed
	if speed < 0 {
		speed = -speed
	}
	if in.MoveLeft {
		l.paddle.Speed = -speed
		l.paddle.Move()
	}
	if in.MoveRight {
		l.paddle.Speed = speed
		l.paddle.Move()
	}

	if !l.state.BallReleased {
		l.ball.PlaceOn(&l.paddle)
	}
}

// resolveX moves the ball along X and resolves the first contact found:
// paddle, then right wall, then left wall, then blocks.
func (l *Level) resolveX() {
	b := &l.ball
	b.Rect.X += b.Velocity.DX

	switch {
	case Colliding(b, &l.paddle):
		ResolveAxisX(&b.Rect, &b.Velocity, l.paddle.Rect)
	case b.Rect.Right() > l.boundary.Right():
		b.Rect.SetRight(l.boundary.Right())
		b.Velocity.DX = -b.Velocity.DX
	case b.Rect.Left() < l.boundary.Left():
		b.Rect.SetLeft(l.boundary.Left())
		b.Velocity.DX = -b.Velocity.DX
	default:
		if blk := l.firstHit(); blk != nil {
			ResolveAxisX(&b.Rect, &b.Velocity, blk.Rect)
			blk.Destroyed = true
		}
	}
}

// resolveY moves the ball along Y and resolves the first contact found:
// paddle, then bottom exit, then top wall, then blocks.
func (l *Level) resolveY() {
	b := &l.ball
	b.Rect.Y += b.Velocity.DY

	switch {
	case Colliding(b, &l.paddle):
		ResolveAxisY(&b.Rect, &b.Velocity)
	case b.Rect.Bottom() > l.boundary.Bottom():
		l.resetBall()
		l.state.Lives--
		l.emit(EventLifeLost)
	case b.Rect.Top() < l.boundary.Top():
		b.Rect.SetTop(l.boundary.Top())
		b.Velocity.DY = -b.Velocity.DY
	default:
		if blk := l.firstHit(); blk != nil {
			ResolveAxisY(&b.Rect, &b.Velocity)
			blk.Destroyed = true
		}
	}
}

// firstHit returns the first block not yet destroyed that overlaps the ball.
func (l *Level) firstHit() *Block {
	for i := range l.blocks {
		blk := &l.blocks[i]
		if blk.Destroyed {
			continue
		}
		if Colliding(&l.ball, blk) {
			return blk
		}
	}
	return nil
}

// correctBall frees a ball pinned between paddle and side wall, and pulls
// back any ball that a paddle contact pushed through a side wall.
func (l *Level) correctBall() {
	if ResolveSqueeze(&l.ball, &l.paddle, l.boundary) {
		return
	}
	containHorizontal(&l.ball, l.boundary)
}

// clampPaddle keeps the paddle inside the side walls. Hitting a wall bounces
// the paddle speed back.
func (l *Level) clampPaddle() {
	p := &l.paddle
	if p.Rect.Right() > l.boundary.Right() {
		p.Rect.SetRight(l.boundary.Right())
		p.Speed = -p.Speed
	} else if p.Rect.Left() < l.boundary.Left() {
		p.Rect.SetLeft(l.boundary.Left())
		p.Speed = -p.Speed
	}
}

// collectDestroyed filters destroyed blocks out of the live set. Each removed
// block scores points and speeds the ball up.
func (l *Level) collectDestroyed() {
	live := l.blocks[:0]
	for _, blk := range l.blocks {
		if !blk.Destroyed {
			live = append(live, blk)
			continue
		}
		l.state.Score += l.rules.ScorePerBlock
		l.ball.Velocity = l.ball.Velocity.Scale(l.rules.SpeedUp)
		l.emit(EventBlockDestroyed)
	}
	// Zero the tail so removed blocks are not retained.
	for i := len(live); i < len(l.blocks); i++ {
		l.blocks[i] = Block{}
	}
	l.blocks = live
	l.capBallSpeed()
}

// capBallSpeed scales the ball velocity down to MaxBallSpeed when set.
func (l *Level) capBallSpeed() {
	limit := l.rules.MaxBallSpeed
	if limit <= 0 {
		return
	}
	if m := l.ball.Velocity.Magnitude(); m > limit {
		l.ball.Velocity = l.ball.Velocity.Scale(limit / m)
	}
}

func (l *Level) checkTermination() {
	if l.state.Lives < 1 {
		l.state.GameOver = true
		l.emit(EventGameOver)
	} else if len(l.blocks) == 0 {
		l.state.PlayerWon = true
		l.emit(EventPlayerWon)
	}
}
