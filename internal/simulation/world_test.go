package simulation

import (
	"math"
	"sync"
	"testing"

	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(Options{Seed: 7})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func controlledState(t *testing.T, snap types.MatchSnapshot) types.PlayerState {
	t.Helper()
	for _, p := range snap.Players {
		if p.ID == snap.ControlledID {
			return p
		}
	}
	t.Fatalf("no controlled player in snapshot")
	return types.PlayerState{}
}

func TestHeldKeyMovesControlledPlayerEachTick(t *testing.T) {
	w := newTestWorld(t)
	before := controlledState(t, w.Snapshot())

	w.ApplyKey(input.KeyRight, true)
	for range 3 {
		w.Tick()
	}
	after := controlledState(t, w.Snapshot())
	if math.Abs(after.Position.X-before.Position.X-3*PlayerSpeed) > 1e-9 {
		t.Fatalf("expected to move %f, moved %f", 3*PlayerSpeed, after.Position.X-before.Position.X)
	}

	w.ApplyKey(input.KeyRight, false)
	w.Tick()
	stopped := controlledState(t, w.Snapshot())
	if stopped.Position != after.Position {
		t.Fatalf("expected release to stop the player, got=%+v", stopped.Position)
	}
}

func TestPressedKeyFiresOnce(t *testing.T) {
	w := newTestWorld(t)
	w.ApplyKey(input.KeyReset, true)
	w.ApplyKey(input.KeyReset, false)

	events := w.Tick()
	if len(events) != 1 || events[0].Reason != types.ReasonManual {
		t.Fatalf("expected a manual kickoff, got=%+v", events)
	}
	if events = w.Tick(); len(events) != 0 {
		t.Fatalf("expected the press to be consumed, got=%+v", events)
	}
}

func TestReleaseKeysStopsMovement(t *testing.T) {
	w := newTestWorld(t)
	w.ApplyKey(input.KeyDown, true)
	w.Tick()
	w.ReleaseKeys()
	before := controlledState(t, w.Snapshot())
	w.Tick()
	after := controlledState(t, w.Snapshot())
	if after.Position != before.Position {
		t.Fatalf("expected no movement after release, before=%+v after=%+v", before.Position, after.Position)
	}
}

func TestWorldSnapshotIsDeepCopy(t *testing.T) {
	w := newTestWorld(t)
	snap := w.Snapshot()
	snap.Players[0].Position.X = 999999
	snap.Ball.Position.X = -1

	fresh := w.Snapshot()
	if fresh.Players[0].Position.X == 999999 || fresh.Ball.Position.X == -1 {
		t.Fatal("world state mutated through snapshot")
	}
	if w.Score() != (types.ScoreState{}) {
		t.Fatalf("expected fresh score, got=%+v", w.Score())
	}
}

func TestConcurrentInputAndTicks(t *testing.T) {
	w := newTestWorld(t)
	keys := []input.Key{input.KeyUp, input.KeyLeft, input.KeySwitch, input.KeyShoot}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 500 {
			k := keys[i%len(keys)]
			w.ApplyKey(k, true)
			w.ApplyKey(k, false)
		}
	}()
	go func() {
		defer wg.Done()
		for range 500 {
			_ = w.Snapshot()
		}
	}()
	for range 500 {
		w.Tick()
	}
	wg.Wait()

	if w.Snapshot().Tick != 500 {
		t.Fatalf("expected 500 ticks, got=%d", w.Snapshot().Tick)
	}
}
