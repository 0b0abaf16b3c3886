package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileName is the configuration file looked up in the home directory.
const FileName = ".curveditrc"

type Config struct {
	StartDir     string
	ExportWidth  int
	ExportHeight int
	SampleSteps  int
	Spring       bool
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		StartDir:     ".",
		ExportWidth:  960,
		ExportHeight: 480,
		SampleSteps:  100,
		Spring:       true,
	}
}

// Load reads ~/.curveditrc. A missing or unreadable file yields the defaults.
func Load() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}

	file, err := os.Open(filepath.Join(homeDir, FileName))
	if err != nil {
		return Default()
	}
	defer file.Close()

	return Parse(file, homeDir)
}

// Parse reads key = value lines. Blank lines, # comments, unknown keys and
// invalid values are ignored. A leading ~ in start_dir expands to homeDir.
func Parse(r io.Reader, homeDir string) *Config {
	config := Default()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "start_dir", "startdir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if value != "" {
				config.StartDir = value
			}
		case "export_width":
			setPositive(&config.ExportWidth, value)
		case "export_height":
			setPositive(&config.ExportHeight, value)
		case "sample_steps":
			setPositive(&config.SampleSteps, value)
		case "spring":
			if b, err := strconv.ParseBool(value); err == nil {
				config.Spring = b
			}
		}
	}

	return config
}

func setPositive(dst *int, value string) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
