package breakout

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// SpriteKind tells the renderer what a sprite is.
type SpriteKind int

const (
	SpritePaddle SpriteKind = iota
	SpriteBall
	SpriteBlock
)

// Sprite is one entity to draw.
type Sprite struct {
	Kind  SpriteKind
	Rect  Rect
	Color core.Color
}

// Snapshot is a value copy of everything a renderer needs, taken between
// ticks. It shares no memory with the level.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	Lives        int
	BallReleased bool
	GameOver     bool
	PlayerWon    bool

	// Paddle first, then the ball, then live blocks in layout order.
	Sprites []Sprite
}

// Snapshot returns the current render snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.level.State()
	paddle := g.level.Paddle()
	ball := g.level.Ball()
	blocks := g.level.Blocks()

	sprites := make([]Sprite, 0, len(blocks)+2)
	sprites = append(sprites,
		Sprite{Kind: SpritePaddle, Rect: paddle.Rect, Color: core.ColorDefault},
		Sprite{Kind: SpriteBall, Rect: ball.Rect, Color: core.ColorOrange},
	)
	for _, blk := range blocks {
		sprites = append(sprites, Sprite{Kind: SpriteBlock, Rect: blk.Rect, Color: blk.Color})
	}

	return Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:        g.phase,
		Score:        st.Score,
		Lives:        st.Lives,
		BallReleased: st.BallReleased,
		GameOver:     st.GameOver,
		PlayerWon:    st.PlayerWon,
		Sprites:      sprites,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.BallReleased)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.PlayerWon)

	for _, s := range snap.Sprites {
		h = h*31 + uint64(s.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(s.Rect.X)
		h = h*31 + math.Float64bits(s.Rect.Y)
		h = h*31 + math.Float64bits(s.Rect.W)
		h = h*31 + math.Float64bits(s.Rect.H)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
