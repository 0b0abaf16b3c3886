package main

import (
	"fmt"
	"log"

	"github.com/olivier-w/curvedit/internal/config"
	"github.com/olivier-w/curvedit/internal/curvefile"
	"github.com/olivier-w/curvedit/internal/editor"
	"github.com/olivier-w/curvedit/internal/ui"
)

func buildEditorModel(path string, cfg *config.Config) (ui.Model, error) {
	s, err := openSession(path)
	if err != nil {
		return ui.Model{}, err
	}
	return ui.New(s, cfg), nil
}

// openSession starts a session on path. A missing file yields the default
// curve attached to path; a file that does not decode is reported in the
// status bar and leaves the session detached.
func openSession(path string) (*editor.Session, error) {
	exists, err := curvefile.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("can't open: %w", err)
	}
	if !exists {
		log.Printf("%s does not exist, starting a new curve", path)
		return editor.NewSessionFor(path), nil
	}

	text, err := curvefile.Read(path)
	if err != nil {
		return nil, fmt.Errorf("can't open: %w", err)
	}
	s := editor.NewSession()
	s.Load(path, text)
	return s, nil
}
