package simulation

import (
	"math"
	"testing"

	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

func TestRosterShape(t *testing.T) {
	f := field.Default()
	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		roster := NewRoster(f, team)
		if len(roster) != PlayersPerTeam {
			t.Fatalf("expected %d players, got=%d", PlayersPerTeam, len(roster))
		}
		keepers := 0
		for i, p := range roster {
			if p.Team != team || p.Number != i {
				t.Fatalf("unexpected roster entry %+v at %d", p, i)
			}
			if p.IsGoalkeeper() {
				keepers++
			}
			if !f.IsInsideField(p.Start(), PlayerRadius) {
				t.Fatalf("%s starts outside the field at %+v", p.ID, p.Start())
			}
		}
		if keepers != 1 || !roster[0].IsGoalkeeper() {
			t.Fatalf("expected exactly one goalkeeper first in roster, got=%d", keepers)
		}
	}
}

func TestRosterIsMirrored(t *testing.T) {
	f := field.Default()
	a := NewRoster(f, types.TeamA)
	b := NewRoster(f, types.TeamB)
	sum := f.Bounds().Left + f.Bounds().Right
	for i := range a {
		pa, pb := a[i].Start(), b[i].Start()
		if math.Abs(pa.X+pb.X-sum) > 1e-9 || math.Abs(pa.Y-pb.Y) > 1e-9 {
			t.Fatalf("player %d not mirrored: A=%+v B=%+v", i, pa, pb)
		}
		if pa.X >= f.Center().X {
			t.Fatalf("team A player %d starts in the opposing half: %+v", i, pa)
		}
	}
	if a[0].Start() != geom.V(f.Bounds().Left+KeeperLineOffset, f.Center().Y) {
		t.Fatalf("unexpected keeper anchor %+v", a[0].Start())
	}
}

func TestSelectChasersPicksNearestInOrder(t *testing.T) {
	m := newTestMatch(t)
	ball := geom.V(620, 180)
	candidates := m.aiOutfield(types.TeamB)

	chasers := SelectChasers(candidates, ball, ChaserCount)
	if len(chasers) != ChaserCount {
		t.Fatalf("expected %d chasers, got=%d", ChaserCount, len(chasers))
	}
	for i := 1; i < len(chasers); i++ {
		if geom.Distance(chasers[i-1].Position, ball) > geom.Distance(chasers[i].Position, ball) {
			t.Fatal("expected chasers in non-decreasing distance order")
		}
	}
	worst := geom.Distance(chasers[len(chasers)-1].Position, ball)
	chosen := map[*Player]bool{}
	for _, c := range chasers {
		chosen[c] = true
	}
	for _, p := range candidates {
		if !chosen[p] && geom.Distance(p.Position, ball) < worst {
			t.Fatalf("%s is nearer than a selected chaser", p.ID)
		}
	}

	again := SelectChasers(candidates, ball, ChaserCount)
	for i := range chasers {
		if chasers[i] != again[i] {
			t.Fatal("expected identical chasers on repeated selection")
		}
	}
}

func TestSelectChasersBreaksTiesByRosterOrder(t *testing.T) {
	ball := geom.V(0, 0)
	players := []*Player{
		{ID: "p0", Position: geom.V(10, 0)},
		{ID: "p1", Position: geom.V(0, 10)},
		{ID: "p2", Position: geom.V(-10, 0)},
		{ID: "p3", Position: geom.V(0, -10)},
	}
	got := SelectChasers(players, ball, 3)
	want := []string{"p0", "p1", "p2"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("expected %v, got %s at %d", want, got[i].ID, i)
		}
	}
	if players[0].ID != "p0" || players[3].ID != "p3" {
		t.Fatal("selection must not reorder the input roster")
	}
}

func TestSelectChasersSmallRoster(t *testing.T) {
	players := []*Player{{ID: "x", Position: geom.V(5, 5)}, {ID: "y", Position: geom.V(1, 1)}}
	got := SelectChasers(players, geom.V(0, 0), 3)
	if len(got) != 2 || got[0].ID != "y" {
		t.Fatalf("expected both players nearest first, got=%v", got)
	}
	if len(SelectChasers(nil, geom.V(0, 0), 3)) != 0 {
		t.Fatal("expected no chasers from an empty roster")
	}
}

func TestChasersStepTowardBallOthersStayHome(t *testing.T) {
	m := newTestMatch(t)
	m.ball.Position = geom.V(600, 420)

	expected := map[*Player]bool{}
	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		for _, p := range SelectChasers(m.aiOutfield(team), m.ball.Position, ChaserCount) {
			expected[p] = true
		}
	}
	before := map[*Player]geom.Vec2{}
	for _, p := range m.players {
		before[p] = p.Position
	}

	m.runAI()

	for _, p := range m.players {
		moved := geom.Distance(before[p], p.Position)
		switch {
		case p == m.controlled:
			if moved != 0 {
				t.Fatalf("AI moved the controlled player %s", p.ID)
			}
		case expected[p]:
			if math.Abs(moved-AISpeed) > 1e-9 {
				t.Fatalf("chaser %s moved %f, want %f", p.ID, moved, AISpeed)
			}
			if geom.Distance(p.Position, m.ball.Position) >= geom.Distance(before[p], m.ball.Position) {
				t.Fatalf("chaser %s did not approach the ball", p.ID)
			}
		case !p.IsGoalkeeper():
			if moved != 0 {
				t.Fatalf("non-chaser %s at home should not move, moved %f", p.ID, moved)
			}
		}
	}
}

func TestNonChaserReturnsHome(t *testing.T) {
	m := newTestMatch(t)
	m.ball.Position = geom.V(880, 520)

	var p *Player
	for _, q := range m.aiOutfield(types.TeamA) {
		if q.Number == 1 {
			p = q
		}
	}
	home := p.Role.(Outfield).Home
	p.Position = home.Add(geom.V(0, 10))

	m.runAI()
	if got := geom.Distance(p.Position, home); math.Abs(got-(10-ReturnSpeed)) > 1e-9 {
		t.Fatalf("expected one return step toward home, distance now %f", got)
	}

	p.Position = home.Add(geom.V(HomeEpsilon/2, 0))
	start := p.Position
	m.runAI()
	if p.Position != start {
		t.Fatal("expected no movement within the home epsilon")
	}
}

func TestGoalkeeperFollowsBallInsideBand(t *testing.T) {
	m := newTestMatch(t)
	keeper := m.players[0]
	anchor := keeper.Role.(Goalkeeper).Anchor
	m.ball.Position = geom.V(200, 520)

	m.runAI()
	if keeper.Position.Y-anchor.Y != KeeperSpeed {
		t.Fatalf("expected keeper to step %f, moved %f", KeeperSpeed, keeper.Position.Y-anchor.Y)
	}

	for range 100 {
		m.runAI()
	}
	cy := m.field.Center().Y
	if keeper.Position != geom.V(anchor.X, cy+KeeperBandHalf) {
		t.Fatalf("expected keeper clamped to band edge, got=%+v", keeper.Position)
	}

	m.ball.Position = geom.V(200, cy-10)
	for range 100 {
		m.runAI()
	}
	if keeper.Position != geom.V(anchor.X, cy-10) {
		t.Fatalf("expected keeper to track the ball inside the band, got=%+v", keeper.Position)
	}
}

func TestControlledPlayerIsNotAChaser(t *testing.T) {
	m := newTestMatch(t)
	for _, p := range m.aiOutfield(m.humanTeam) {
		if p == m.controlled {
			t.Fatal("controlled player listed as an AI candidate")
		}
	}
	if n := len(m.aiOutfield(m.humanTeam)); n != PlayersPerTeam-2 {
		t.Fatalf("expected %d AI outfield players, got=%d", PlayersPerTeam-2, n)
	}
}

func TestAutopilotDrivesControlledPlayer(t *testing.T) {
	m, err := NewMatch(Options{Seed: 3, Autopilot: true})
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	if n := len(m.aiOutfield(types.TeamA)); n != PlayersPerTeam-1 {
		t.Fatalf("expected every outfield player under AI, got=%d", n)
	}
}
