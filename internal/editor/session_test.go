package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olivier-w/curvedit/internal/curve"
	"github.com/olivier-w/curvedit/internal/status"
)

func TestNewSessionIsClean(t *testing.T) {
	s := NewSession()
	s.Step(move(0.5, 0.5))
	if s.Document().Dirty() {
		t.Fatal("expected default curve to start clean")
	}
	if s.Document().Attached() {
		t.Fatal("expected detached session")
	}
}

func TestSessionForNewFileIsDirty(t *testing.T) {
	s := NewSessionFor("ease.curve")
	s.Step(move(0.5, 0.5))

	path, content, ok := s.PendingSave()
	if !ok {
		t.Fatal("expected pending save for a new file")
	}
	if path != "ease.curve" || !strings.HasPrefix(content, "0.0000:0.5000\n0.2000:0.3000\n") {
		t.Fatalf("unexpected save %q %q", path, content)
	}
}

func TestLoadAttachesDocument(t *testing.T) {
	s := NewSession()
	if !s.Load("ease.curve", "0.0000:0.0000\n0.5000:0.2500\n1.0000:1.0000\n") {
		t.Fatal("expected load to succeed")
	}

	want := []curve.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.25}, {X: 1, Y: 1}}
	if d := cmp.Diff(want, s.Points().Committed()); d != "" {
		t.Fatalf("unexpected points (-want +got):\n%s", d)
	}
	doc := s.Document()
	if !doc.Attached() || doc.Path() != "ease.curve" || doc.Dirty() {
		t.Fatalf("unexpected document state: attached=%v path=%q dirty=%v", doc.Attached(), doc.Path(), doc.Dirty())
	}
	if _, _, ok := s.PendingSave(); ok {
		t.Fatal("expected nothing to save right after load")
	}
}

func TestLoadInvalidKeepsPoints(t *testing.T) {
	s := NewSession()
	before := s.Points().Committed()

	if s.Load("bad.curve", "0.0000:0.0500\n0.5:oups\n") {
		t.Fatal("expected load to fail")
	}
	if d := cmp.Diff(before, s.Points().Committed()); d != "" {
		t.Fatalf("expected points unchanged (-want +got):\n%s", d)
	}
	if s.Document().Attached() {
		t.Fatal("expected document to stay detached")
	}

	msg := s.Status().MostImportant(0)
	if msg.Tone != status.ToneError {
		t.Fatalf("expected error tone, got %v", msg.Tone)
	}
	if !strings.HasPrefix(msg.Text, "invalid format: line 2: y is not float32") {
		t.Fatalf("unexpected error text %q", msg.Text)
	}
}

func TestPasteEmptyIsRejected(t *testing.T) {
	s := NewSession()
	if s.Paste("") {
		t.Fatal("expected empty paste to be rejected")
	}
	if msg := s.Status().MostImportant(0); !strings.HasPrefix(msg.Text, "invalid format: no points") {
		t.Fatalf("unexpected error text %q", msg.Text)
	}
	if s.Points().Len() != 6 {
		t.Fatalf("expected default points kept, got %d", s.Points().Len())
	}
}

func TestPasteMarksAttachedDocumentDirty(t *testing.T) {
	s := NewSession()
	s.Load("ease.curve", "0.0000:0.0000\n1.0000:1.0000\n")

	if !s.Paste("0.0000:1.0000\n1.0000:0.0000\n") {
		t.Fatal("expected paste to succeed")
	}
	s.Step(move(0.5, 0.5))
	if !s.Document().Dirty() {
		t.Fatal("expected pasted curve to make the document dirty")
	}
	if s.Document().Path() != "ease.curve" {
		t.Fatalf("expected paste to keep the attached path, got %q", s.Document().Path())
	}
}

func TestEditSaveCycle(t *testing.T) {
	s := NewSession()
	s.Load("ease.curve", "0.0000:0.0000\n0.5000:0.5000\n1.0000:1.0000\n")

	s.Step(press(0.5, 0.5))
	s.Step(move(0.5, 0.7))
	s.Step(release(0.5, 0.7))

	path, content, ok := s.PendingSave()
	if !ok {
		t.Fatal("expected unsaved changes")
	}
	if want := "0.0000:0.0000\n0.5000:0.7000\n1.0000:1.0000\n"; content != want {
		t.Fatalf("expected %q, got %q", want, content)
	}

	s.Saved(path, nil)
	if s.Document().Dirty() {
		t.Fatal("expected clean document after save")
	}
	if msg := s.Status().MostImportant(0); msg.Tone != status.ToneInfo || !strings.HasPrefix(msg.Text, "file ease.curve saved!") {
		t.Fatalf("unexpected status %+v", msg)
	}
}

func TestFailedSaveStillMarksClean(t *testing.T) {
	s := NewSessionFor("ro.curve")
	s.Step(move(0.5, 0.5))

	s.Saved("ro.curve", errors.New("permission denied"))
	if s.Document().Dirty() {
		t.Fatal("expected failed save to reset the dirty flag")
	}
	if msg := s.Status().MostImportant(0); msg.Text != "failed save: permission denied (5.0s)" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
}

func TestSaveAsAttaches(t *testing.T) {
	s := NewSession()
	content := s.SaveAs("new.curve")
	if !s.Document().Attached() || s.Document().Path() != "new.curve" {
		t.Fatal("expected document attached to new.curve")
	}
	if content != s.Encoded() {
		t.Fatalf("expected encoded points, got %q", content)
	}
}

func TestStepShowsHoverHints(t *testing.T) {
	s := NewSession()

	s.Step(move(0.41, 0.5))
	if msg := s.Status().MostImportant(0.1); msg.Text != "x: 0.40 y: 0.50" {
		t.Fatalf("expected point hint, got %q", msg.Text)
	}

	s.Step(move(0.3, 0.4))
	if msg := s.Status().MostImportant(0.1); msg.Text != "click to add point at x: 0.30 y: 0.40" {
		t.Fatalf("expected ghost hint, got %q", msg.Text)
	}
	if _, ok := s.Ghost(curve.V(0.3, 0.4)); !ok {
		t.Fatal("expected ghost under the pointer")
	}

	s.Step(press(0.4, 0.5))
	s.Step(move(0.45, 0.62))
	if msg := s.Status().MostImportant(0.1); msg.Text != "x: 0.45 y: 0.62" {
		t.Fatalf("expected drag hint, got %q", msg.Text)
	}
}

func TestFailReportsEnvironmentErrors(t *testing.T) {
	s := NewSession()
	s.Fail("clipboard not available", errors.New("no xclip"))
	if msg := s.Status().MostImportant(0); msg.Text != "clipboard not available: no xclip (5.0s)" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
}

func TestSessionSample(t *testing.T) {
	s := NewSession()
	if got := s.Sample(0.4); got != 0.5 {
		t.Fatalf("expected 0.5 at a control point, got %v", got)
	}
}
