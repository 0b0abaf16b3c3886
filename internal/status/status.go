package status

import "github.com/olivier-w/curvedit/internal/util"

// Time-to-live of timed messages, in seconds.
const (
	ErrorTTL = 5.0
	InfoTTL  = 3.0
)

// Tone tells the presentation layer how to colour a message.
type Tone int

const (
	ToneHint Tone = iota
	ToneInfo
	ToneError
)

func (t Tone) String() string {
	switch t {
	case ToneError:
		return "error"
	case ToneInfo:
		return "info"
	default:
		return "hint"
	}
}

// Message is the text currently shown in the status bar.
type Message struct {
	Text string
	Tone Tone
}

type timedText struct {
	text string
	ttl  float32
}

// Bar holds one error slot, one info slot and a hint. Errors win over infos,
// infos over the hint.
type Bar struct {
	err  timedText
	info timedText
	hint string
}

// ShowError replaces the error message for ErrorTTL seconds.
func (b *Bar) ShowError(text string) {
	b.err = timedText{text: text, ttl: ErrorTTL}
}

// ShowInfo replaces the info message for InfoTTL seconds.
func (b *Bar) ShowInfo(text string) {
	b.info = timedText{text: text, ttl: InfoTTL}
}

// ShowHint sets the hint. It is cleared after it has been displayed once, so
// callers set it on every tick it should stay visible.
func (b *Bar) ShowHint(text string) {
	b.hint = text
}

// MostImportant advances the active timer by dt seconds and returns the
// message to display.
func (b *Bar) MostImportant(dt float32) Message {
	if b.err.ttl > 0 {
		b.err.ttl = clamp(b.err.ttl-dt, 0, 10)
		return Message{Text: b.err.format(), Tone: ToneError}
	}

	if b.info.ttl > 0 {
		b.info.ttl = clamp(b.info.ttl-dt, 0, 5)
		return Message{Text: b.info.format(), Tone: ToneInfo}
	}

	hint := b.hint
	b.hint = ""
	return Message{Text: hint, Tone: ToneHint}
}

func (t timedText) format() string {
	return t.text + " (" + util.FormatTTL(t.ttl) + ")"
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
