package breakout

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != PhaseMenu {
		t.Fatalf("Phase() = %s, expected menu", g.Phase())
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionRight, core.ActionRelease))
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("the level should not advance while the menu is shown")
	}
	if !g.State().Paused {
		t.Error("State().Paused should be true in the menu")
	}
}

func TestGamePauseResume(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %s, expected running", g.Phase())
	}

	g.Step(frame(core.ActionRelease))
	events := g.Events()
	if len(events) != 1 || events[0].Type != EventBallReleased {
		t.Errorf("Events() = %v, expected [ball_released]", eventTypes(events))
	}

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Fatalf("Phase() = %s, expected paused", g.Phase())
	}

	paused := g.Snapshot()
	for range 10 {
		g.Step(frame(core.ActionLeft))
	}
	if snap := g.Snapshot(); snap.Hash() != paused.Hash() {
		t.Error("ball and paddle should not move while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %s, expected running after resume", g.Phase())
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRelease))
	for i := range 200 {
		if i%2 == 0 {
			g.Step(frame(core.ActionRight))
		} else {
			g.Step(frame())
		}
	}
	first := g.Level()

	g.Step(frame(core.ActionRestart))

	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %s, expected menu after reset", g.Phase())
	}
	if g.Level() == first {
		t.Error("reset should build a new level")
	}
	st := g.Level().State()
	if st.Score != 0 || st.Lives != 4 || st.BallReleased {
		t.Errorf("state after reset = %+v, expected a fresh level", st)
	}
	if g.Level().BlockCount() != 45 {
		t.Errorf("BlockCount() = %d, expected 45", g.Level().BlockCount())
	}
	if snap := g.Snapshot(); snap.Tick != 0 {
		t.Errorf("Tick = %d, expected 0", snap.Tick)
	}
	if g.Params() != DefaultParams() {
		t.Error("reset should keep the construction parameters")
	}
}

func TestGameOverPhase(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	g.level.state.Lives = 1
	launch(g.level, 100, 535, Velocity{DX: 2, DY: 2})

	res := g.Step(frame())

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s, expected gameover", g.Phase())
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("State = %+v, expected lost game", res.State)
	}
	if !sameEvents(g.Events(), EventLifeLost, EventGameOver) {
		t.Errorf("Events() = %v, expected [life_lost game_over]", eventTypes(g.Events()))
	}

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhaseGameOver {
		t.Errorf("pause should not leave game over, got %s", g.Phase())
	}

	g.Step(frame(core.ActionRestart))
	if g.Phase() != PhaseMenu || g.State().Lives != 4 {
		t.Errorf("restart from game over: phase %s lives %d", g.Phase(), g.State().Lives)
	}
}

func TestGameWonPhase(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	g.level.blocks = []Block{{Rect: NewRect(300, 100, 45, 20)}}
	launch(g.level, 310, 122, Velocity{DX: 0, DY: -3})

	res := g.Step(frame())

	if g.Phase() != PhasePlayerWon {
		t.Fatalf("Phase() = %s, expected won", g.Phase())
	}
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("State = %+v, expected won game", res.State)
	}
	if res.State.Score != 100 {
		t.Errorf("Score = %d, expected 100", res.State.Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 2000)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i] = frame(core.ActionPause)
		case i%100 == 1:
			inputs[i] = frame(core.ActionRelease)
		case i%7 < 3:
			inputs[i] = frame(core.ActionRight)
		case i%7 < 6:
			inputs[i] = frame(core.ActionLeft)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Lives = 0

	g, err := New(p)
	if g != nil || !errors.Is(err, ErrInvalidParams) {
		t.Errorf("New() = %v, %v, expected nil and ErrInvalidParams", g, err)
	}
}

func TestParamsFromConfig(t *testing.T) {
	if got := ParamsFromConfig(config.DefaultBreakoutConfig()); got != DefaultParams() {
		t.Errorf("ParamsFromConfig(defaults) = %+v, expected %+v", got, DefaultParams())
	}

	cfg := config.DefaultBreakoutConfig()
	cfg.Board.Columns = 6
	cfg.Rules.MaxBallSpeed = 9
	p := ParamsFromConfig(cfg)
	if p.Columns != 6 || p.Rules.MaxBallSpeed != 9 {
		t.Errorf("ParamsFromConfig() = %+v, expected columns 6 and speed cap 9", p)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if len(snap.Sprites) != 47 {
		t.Fatalf("len(Sprites) = %d, expected paddle, ball and 45 blocks", len(snap.Sprites))
	}
	if snap.Sprites[0].Kind != SpritePaddle || snap.Sprites[1].Kind != SpriteBall {
		t.Errorf("first sprites = %v, %v, expected paddle then ball", snap.Sprites[0].Kind, snap.Sprites[1].Kind)
	}
	if snap.Sprites[2].Color != core.ColorRed {
		t.Errorf("first block color = %s, expected red", snap.Sprites[2].Color)
	}

	snap.Sprites[2].Rect.X = -100
	if blk := g.Level().Blocks()[0]; blk.Rect.X != 21 {
		t.Error("mutating a snapshot should not affect the level")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "A R K A N O I D") {
		t.Errorf("menu should show the title, got:\n%s", out)
	}
	if !strings.Contains(out, "Lifes: 4") {
		t.Errorf("HUD should show lives, got:\n%s", out)
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD should show score, got:\n%s", out)
	}
	if !strings.ContainsRune(out, BlockChar) || !strings.ContainsRune(out, PaddleChar) || !strings.ContainsRune(out, BallChar) {
		t.Errorf("board should show blocks, paddle and ball, got:\n%s", out)
	}
	if !strings.ContainsRune(screen.Row(1), DelimiterChar) {
		t.Errorf("row 1 should hold the HUD delimiter, got %q", screen.Row(1))
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSE") {
		t.Error("paused game should show the pause overlay")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(20, 8)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMenu, "menu"},
		{PhaseRunning, "running"},
		{PhasePaused, "paused"},
		{PhaseGameOver, "gameover"},
		{PhasePlayerWon, "won"},
	}
	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.phase, got, tc.expected)
		}
	}
}

func TestBanner(t *testing.T) {
	if got := Banner(); got != "A R K A N O I D" {
		t.Errorf("Banner() = %q, expected %q", got, "A R K A N O I D")
	}
}
