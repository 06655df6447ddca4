package render

// TextSink displays a single line of text, such as a score label.
type TextSink interface {
	SetText(text string)
}

// Scoreboard forwards the score line to a sink only when it changes.
type Scoreboard struct {
	sink  TextSink
	last  string
	shown bool
}

func NewScoreboard(sink TextSink) *Scoreboard {
	return &Scoreboard{sink: sink}
}

// Update pushes line if it differs from the last one shown and reports
// whether the sink was written.
func (b *Scoreboard) Update(line string) bool {
	if b.shown && line == b.last {
		return false
	}
	b.last, b.shown = line, true
	b.sink.SetText(line)
	return true
}

// Text returns the line currently shown.
func (b *Scoreboard) Text() string {
	return b.last
}
