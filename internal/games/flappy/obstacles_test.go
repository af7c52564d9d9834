package flappy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
)

func newTestPool(cfg config.GameConfig) *Pool {
	return NewPool(cfg, rand.New(rand.NewSource(1)), 0)
}

func TestPairGeometry(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	p := newPair(800, 300, cfg.Obstacles)

	if got := p.TopBox().Bottom(); got != 200 {
		t.Errorf("top bottom edge = %d, want 200", got)
	}
	if got := p.BottomBox().Top(); got != 400 {
		t.Errorf("bottom top edge = %d, want 400", got)
	}
	if p.TopBox().Left() != 800 || p.BottomBox().Left() != 800 {
		t.Error("both halves should start at the right edge")
	}
	if p.Right() != 880 {
		t.Errorf("right = %d, want 880", p.Right())
	}
}

func TestPairCollision(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	p := newPair(100, 300, cfg.Obstacles) // top [50,200), bottom [400,550), x [100,180)

	tests := []struct {
		name string
		box  core.Rect
		want bool
	}{
		{"in gap", core.NewRect(100, 280, 80, 40), false},
		{"one unit into top", core.NewRect(100, 199, 80, 40), true},
		{"touching top", core.NewRect(100, 200, 80, 40), false},
		{"one unit into bottom", core.NewRect(100, 361, 80, 40), true},
		{"touching bottom", core.NewRect(100, 360, 80, 40), false},
		{"one unit into left side", core.NewRect(21, 100, 80, 40), true},
		{"touching left side", core.NewRect(20, 100, 80, 40), false},
		{"one unit into right side", core.NewRect(179, 450, 80, 40), true},
		{"touching right side", core.NewRect(180, 450, 80, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Collides(tt.box); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}

func TestPairCheckPassOnce(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	p := newPair(0, 300, cfg.Obstacles) // right edge 80

	if p.CheckPass(80) {
		t.Error("trailing edge equal to actor left should not count")
	}
	if !p.CheckPass(81) {
		t.Error("trailing edge left of actor should count")
	}
	if p.CheckPass(81) || p.CheckPass(500) {
		t.Error("a pair should only count once")
	}
	if !p.Passed {
		t.Error("Passed should stay set")
	}
}

func TestPoolSpawnInterval(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)

	if pool.Spawn(2000 * time.Millisecond) {
		t.Error("spawn at exactly the interval should wait")
	}
	if !pool.Spawn(2001 * time.Millisecond) {
		t.Error("spawn after the interval should fire")
	}
	if pool.Spawn(3000 * time.Millisecond) {
		t.Error("timer should restart from the last spawn")
	}
	if pool.Len() != 1 {
		t.Errorf("Len = %d, want 1", pool.Len())
	}

	pair := pool.Pairs()[0]
	if pair.X != 800 {
		t.Errorf("spawn x = %v, want 800", pair.X)
	}
	if pair.GapCenter < 100 || pair.GapCenter > 500 {
		t.Errorf("gap center %d outside [100, 500]", pair.GapCenter)
	}
}

func TestPoolSpawnCountOverTime(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	frame := core.FrameInterval(60)
	total := 60 * time.Second

	spawned := 0
	for now := frame; now <= total; now += frame {
		if pool.Spawn(now) {
			spawned++
		}
	}

	want := int(total / cfg.Obstacles.SpawnInterval())
	if spawned < want-1 || spawned > want {
		t.Errorf("spawned %d pairs in %v, want about %d", spawned, total, want)
	}
}

func TestPoolGapCentersInRange(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)

	seenLow, seenHigh := false, false
	for i := 0; i < 5000; i++ {
		c := pool.sampleGapCenter()
		if c < 100 || c > 500 {
			t.Fatalf("gap center %d outside [100, 500]", c)
		}
		seenLow = seenLow || c < 200
		seenHigh = seenHigh || c > 400
	}
	if !seenLow || !seenHigh {
		t.Error("gap centers should cover the whole range")
	}
}

func TestPoolAdvanceMovesInLockstep(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	pool.add(300)
	pool.add(200)

	pool.Advance(0, 2)
	pool.Advance(0, 2.5)

	for _, p := range pool.Pairs() {
		if p.X != 795.5 {
			t.Errorf("x = %v, want 795.5", p.X)
		}
		if p.TopBox().Left() != p.BottomBox().Left() {
			t.Error("halves drifted apart")
		}
	}
}

func TestPoolAnimationSharedClock(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	pool.add(300)

	pool.Advance(200*time.Millisecond, 0)
	if pool.Pairs()[0].Top.Frame != 0 {
		t.Fatal("frame should not change at exactly the delay")
	}

	pool.Advance(201*time.Millisecond, 0)
	// A pair spawned now joins the shared clock at frame 0.
	pool.add(250)

	pool.Advance(402*time.Millisecond, 0)
	pairs := pool.Pairs()
	if pairs[0].Top.Frame != 2 || pairs[0].Bottom.Frame != 2 {
		t.Errorf("first pair frames = %d/%d, want 2/2", pairs[0].Top.Frame, pairs[0].Bottom.Frame)
	}
	if pairs[1].Top.Frame != 1 || pairs[1].Bottom.Frame != 1 {
		t.Errorf("second pair frames = %d/%d, want 1/1", pairs[1].Top.Frame, pairs[1].Bottom.Frame)
	}

	// Frames wrap modulo the frame count.
	for i := 3; i <= 8; i++ {
		pool.Advance(time.Duration(i)*201*time.Millisecond, 0)
	}
	for _, p := range pool.Pairs() {
		if p.Top.Frame < 0 || p.Top.Frame >= cfg.Obstacles.Frames {
			t.Errorf("frame %d out of range", p.Top.Frame)
		}
	}
}

func TestPoolSingleFrameNeverAnimates(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	pool := newTestPool(cfg)
	pool.add(300)

	for i := 1; i <= 20; i++ {
		pool.Advance(time.Duration(i)*time.Second, 0)
	}
	if pool.Pairs()[0].Top.Frame != 0 {
		t.Error("single-frame obstacles should stay on frame 0")
	}
}

func TestPoolRetireOffscreen(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	pool.add(300).X = -80 // right edge 0, still on screen
	pool.add(300).X = -81 // right edge -1, gone
	pool.add(300).X = 400

	if removed := pool.RetireOffscreen(); removed != 1 {
		t.Errorf("removed %d, want 1", removed)
	}
	if pool.Len() != 2 {
		t.Fatalf("Len = %d, want 2", pool.Len())
	}
	if pool.Pairs()[0].X != -80 || pool.Pairs()[1].X != 400 {
		t.Error("retirement should keep spawn order")
	}
}

func TestPoolCheckPassCountsEachPairOnce(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	pool.add(300).X = -30 // right 50
	pool.add(300).X = 0   // right 80

	if n := pool.CheckPass(60); n != 1 {
		t.Errorf("first check passed %d, want 1", n)
	}
	if n := pool.CheckPass(60); n != 0 {
		t.Errorf("second check passed %d, want 0", n)
	}
	if n := pool.CheckPass(100); n != 1 {
		t.Errorf("third check passed %d, want 1", n)
	}
}

func TestPoolReset(t *testing.T) {
	cfg := config.DefaultSharkConfig()
	pool := newTestPool(cfg)
	pool.Spawn(3 * time.Second)

	pool.Reset(10 * time.Second)
	if pool.Len() != 0 {
		t.Error("Reset should drop every pair")
	}
	if pool.Spawn(11 * time.Second) {
		t.Error("spawn timer should restart from the reset time")
	}
	if !pool.Spawn(12*time.Second + time.Millisecond) {
		t.Error("spawn should fire one interval after reset")
	}
}
