package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/curvedit/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if path := os.Getenv("CURVEDIT_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "curvedit")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Load()

	if len(args) > 0 {
		switch args[0] {
		case "sample":
			return runSample(args[1:], cfg, os.Stdout, os.Stderr)
		case "export":
			return runExport(args[1:], cfg, os.Stdout, os.Stderr)
		}
	}

	var model tea.Model
	if len(args) == 0 {
		model = newStartupModel(cfg)
	} else {
		m, err := buildEditorModel(args[0], cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		model = m
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
