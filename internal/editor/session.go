package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/olivier-w/curvedit/internal/codec"
	"github.com/olivier-w/curvedit/internal/curve"
	"github.com/olivier-w/curvedit/internal/document"
	"github.com/olivier-w/curvedit/internal/points"
	"github.com/olivier-w/curvedit/internal/status"
	"github.com/olivier-w/curvedit/internal/util"
)

var errNoPoints = errors.New("no points")

// Session owns the state of one editor: the point set, the status bar and
// the save-state of the attached file. Every mutation goes through it; it
// is driven from a single update loop and is not safe for concurrent use.
type Session struct {
	points *points.Set
	status *status.Bar
	doc    *document.Document
	ctl    *Controller
}

// NewSession returns a detached session editing the default curve.
func NewSession() *Session {
	return newSession(points.New())
}

// NewSessionFor returns a session editing the default curve, attached to a
// path that does not exist yet. It is dirty from the first tick so saving
// creates the file.
func NewSessionFor(path string) *Session {
	s := NewSession()
	s.doc.Attach(path, nil)
	return s
}

func newSession(set *points.Set) *Session {
	return &Session{
		points: set,
		status: &status.Bar{},
		doc:    document.New(set.Committed()),
		ctl:    NewController(set),
	}
}

func (s *Session) Points() *points.Set          { return s.points }
func (s *Session) Status() *status.Bar          { return s.status }
func (s *Session) Document() *document.Document { return s.doc }

// Step runs one tick of interaction, refreshes the hover hint and the dirty
// flag.
func (s *Session) Step(in Input) {
	s.ctl.Step(in)

	if p, ok := s.dragged(); ok {
		s.status.ShowHint(util.FormatCoord(p.Pending))
	} else if target, isGhost, ok := s.ctl.Hover(in.Pointer); ok {
		if isGhost {
			s.status.ShowHint("click to add point at " + util.FormatCoord(target))
		} else {
			s.status.ShowHint(util.FormatCoord(target))
		}
	}

	s.doc.Track(s.points.Committed())
}

func (s *Session) dragged() (points.ControlPoint, bool) {
	for _, p := range s.points.Points() {
		if p.Selected {
			return p, true
		}
	}
	return points.ControlPoint{}, false
}

// Ghost returns the candidate point a click at pointer would create.
func (s *Session) Ghost(pointer curve.Vec) (curve.Vec, bool) {
	target, isGhost, ok := s.ctl.Hover(pointer)
	if !ok || !isGhost {
		return curve.Vec{}, false
	}
	return target, true
}

// Sample evaluates the committed curve at x.
func (s *Session) Sample(x float32) float32 {
	return curve.Sample(s.points.SortedCommitted(), x)
}

// Load replaces the points with the decoded contents of path and attaches
// the document to it. On error the points are left unchanged.
func (s *Session) Load(path, text string) bool {
	if !s.apply(text) {
		return false
	}
	s.doc.Attach(path, s.points.Committed())
	log.Printf("loaded %d points from %s", s.points.Len(), path)
	return true
}

// Paste replaces the points with decoded text without touching the
// attached file.
func (s *Session) Paste(text string) bool {
	if !s.apply(text) {
		return false
	}
	log.Printf("pasted %d points", s.points.Len())
	return true
}

func (s *Session) apply(text string) bool {
	decoded, err := codec.Decode(text)
	if err == nil && len(decoded) == 0 {
		err = errNoPoints
	}
	if err != nil {
		s.status.ShowError(fmt.Sprintf("invalid format: %v", err))
		log.Printf("decode failed: %v", err)
		return false
	}
	s.points.Replace(decoded)
	return true
}

// Encoded returns the committed points in the curve text format.
func (s *Session) Encoded() string {
	return codec.Encode(s.points.Committed())
}

// PendingSave returns the path and contents to write when the document is
// attached and has unsaved changes.
func (s *Session) PendingSave() (path, content string, ok bool) {
	if !s.doc.Attached() || !s.doc.Dirty() {
		return "", "", false
	}
	return s.doc.Path(), s.Encoded(), true
}

// SaveAs attaches the document to path and returns the contents to write.
func (s *Session) SaveAs(path string) string {
	s.doc.Attach(path, nil)
	s.doc.Track(s.points.Committed())
	return s.Encoded()
}

// Saved records the outcome of writing path. The document is marked clean
// either way; a failed write is reported in the status bar.
func (s *Session) Saved(path string, err error) {
	if err != nil {
		s.status.ShowError(fmt.Sprintf("failed save: %v", err))
		log.Printf("save %s failed: %v", path, err)
	} else {
		s.status.ShowInfo(fmt.Sprintf("file %s saved!", path))
		log.Printf("saved %s", path)
	}
	s.doc.MarkSaved(s.points.Committed())
}

// Fail reports an environment failure, such as an unreadable file or an
// unavailable clipboard, as "<what>: <err>".
func (s *Session) Fail(what string, err error) {
	s.status.ShowError(fmt.Sprintf("%s: %v", what, err))
	log.Printf("%s: %v", what, err)
}

// Info shows a short informational message.
func (s *Session) Info(text string) {
	s.status.ShowInfo(text)
}
