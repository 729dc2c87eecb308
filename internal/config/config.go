// Package config loads process settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the knobs of the server process. Gameplay constants live in
// sim.Config and are not configurable.
type Settings struct {
	Addr        string
	TickHz      int
	BroadcastHz int
	ViewWidth   int
	ViewHeight  int
	StaticDir   string
}

// Defaults returns the settings used when nothing is set.
func Defaults() Settings {
	return Settings{
		Addr:        ":8080",
		TickHz:      60,
		BroadcastHz: 20,
		ViewWidth:   1280,
		ViewHeight:  720,
		StaticDir:   "web",
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and builds Settings from it. Missing files are fine;
// variables already set in the environment win over file contents.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("loaded environment from %s", f)
	}
	return FromEnv()
}

// FromEnv builds Settings from REDLIGHT_* variables.
func FromEnv() (Settings, error) {
	s := Defaults()
	if v, err := GetEnvVariable("REDLIGHT_ADDR"); err == nil {
		s.Addr = v
	}
	if v, err := GetEnvVariable("REDLIGHT_STATIC_DIR"); err == nil {
		s.StaticDir = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"REDLIGHT_TICK_HZ", &s.TickHz},
		{"REDLIGHT_BROADCAST_HZ", &s.BroadcastHz},
		{"REDLIGHT_VIEW_WIDTH", &s.ViewWidth},
		{"REDLIGHT_VIEW_HEIGHT", &s.ViewHeight},
	}
	for _, it := range ints {
		v, err := GetEnvVariable(it.key)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Settings{}, fmt.Errorf("%s=%q: want a positive integer", it.key, v)
		}
		*it.dst = n
	}

	if s.BroadcastHz > s.TickHz {
		s.BroadcastHz = s.TickHz
	}
	return s, nil
}

// GetEnvVariable returns the value of v, or an error when it is unset or empty.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}
