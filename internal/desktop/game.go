package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/render"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 600
	TPS          = 60
)

// keySource abstracts ebiten's keyboard polling.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var heldKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
}

var actionKeys = map[ebiten.Key]input.Key{
	ebiten.KeyE:     input.KeySwitch,
	ebiten.KeyR:     input.KeyReset,
	ebiten.KeyA:     input.KeyPass,
	ebiten.KeySpace: input.KeyShoot,
}

// Game runs a match inside the ebiten frame loop. Update is the only
// writer to the match.
type Game struct {
	match *simulation.Match
	keys  keySource
	label *scoreLabel
	board *render.Scoreboard
	log   *logger.Logger
}

func NewGame(m *simulation.Match, log *logger.Logger) *Game {
	label := &scoreLabel{log: log}
	g := &Game{
		match: m,
		keys:  ebitenKeys{},
		label: label,
		board: render.NewScoreboard(label),
		log:   log,
	}
	g.board.Update(m.ScoreLine())
	return g
}

func (g *Game) frame() input.Frame {
	f := input.Frame{Held: map[input.Key]bool{}, Pressed: map[input.Key]bool{}}
	for ek, k := range heldKeys {
		if g.keys.Pressed(ek) {
			f.Held[k] = true
		}
	}
	for ek, k := range actionKeys {
		if g.keys.JustPressed(ek) {
			f.Pressed[k] = true
		}
	}
	return f
}

func (g *Game) Update() error {
	for _, ev := range g.match.Step(g.frame()) {
		g.log.Debug("event", "type", ev.Type, "player", ev.PlayerID, "team", ev.Team, "tick", ev.Tick)
	}
	g.board.Update(g.match.ScoreLine())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(NewSurface(screen), g.match.Field(), g.match.Snapshot())
	ebitenutil.DebugPrintAt(screen, g.label.text, 12, 12)
	ebitenutil.DebugPrintAt(screen, "arrows move  E switch  A pass  SPACE shoot  R reset", 12, ScreenHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(TPS)
	return ebiten.RunGame(g)
}

// scoreLabel is the on-screen score text.
type scoreLabel struct {
	text string
	log  *logger.Logger
}

func (l *scoreLabel) SetText(text string) {
	l.text = text
	l.log.Info("score", "line", text)
}
