package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olivier-w/curvedit/internal/config"
	"github.com/olivier-w/curvedit/internal/curve"
	"github.com/olivier-w/curvedit/internal/curvefile"
	"github.com/olivier-w/curvedit/internal/export"
	"github.com/olivier-w/curvedit/internal/points"
)

var errNoPoints = errors.New("no points")

// runSample prints "t y" for each requested t, or for sample_steps+1 evenly
// spaced values when none are given.
func runSample(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "usage: curvedit sample FILE [T...]")
		return 2
	}

	pts, err := loadSorted(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var ts []float32
	if len(args) == 1 {
		for i := 0; i <= cfg.SampleSteps; i++ {
			ts = append(ts, float32(i)/float32(cfg.SampleSteps))
		}
	}
	for _, arg := range args[1:] {
		t, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid t %q\n", arg)
			return 1
		}
		ts = append(ts, float32(t))
	}

	for _, t := range ts {
		fmt.Fprintf(stdout, "%.4f %.4f\n", t, curve.Sample(pts, t))
	}
	return 0
}

// runExport renders FILE to a PNG at the configured size.
func runExport(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: curvedit export FILE OUT.png")
		return 2
	}

	pts, err := loadSorted(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := export.Options{
		Width:  cfg.ExportWidth,
		Height: cfg.ExportHeight,
		Steps:  cfg.SampleSteps,
	}
	if err := export.SavePNG(args[1], pts, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Exported %s\n", args[1])
	return 0
}

func loadSorted(path string) ([]curve.Vec, error) {
	pts, err := curvefile.Load(path)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("invalid format: %w", errNoPoints)
	}
	return points.FromPositions(pts).SortedCommitted(), nil
}
