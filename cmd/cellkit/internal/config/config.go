// Package config loads the optional cellkit.yaml dashboard configuration.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// FileName is the config file looked up in the working directory.
const FileName = "cellkit.yaml"

const (
	defaultTitle     = "cellkit"
	defaultTick      = 250 * time.Millisecond
	minTick          = 10 * time.Millisecond
	defaultLogFile   = "cellkit.log"
	defaultLogSizeMB = 10
)

// Config represents the cellkit.yaml file.
type Config struct {
	App    AppConfig     `yaml:"app"`
	Engine EngineConfig  `yaml:"engine"`
	Log    LogConfig     `yaml:"log"`
	Panels []PanelConfig `yaml:"panels"`
}

// AppConfig contains dashboard metadata.
type AppConfig struct {
	Title  string `yaml:"title,omitempty"`
	Accent string `yaml:"accent,omitempty"`
}

// EngineConfig contains render loop settings.
type EngineConfig struct {
	// Tick is a Go duration string such as "250ms".
	Tick     string `yaml:"tick,omitempty"`
	MaxDepth int    `yaml:"max_depth,omitempty"`
}

// LogConfig controls the log file written while the screen is open.
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

// PanelConfig describes one bordered dashboard panel.
type PanelConfig struct {
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	// Weight shares the free rows among weighted panels.
	Weight int `yaml:"weight,omitempty"`
	// Height fixes the panel height in rows, border included.
	Height int `yaml:"height,omitempty"`
	// Text is the content of a text panel.
	Text string `yaml:"text,omitempty"`
}

// PanelKind selects what a panel shows.
type PanelKind string

const (
	// PanelCounter counts frames drawn.
	PanelCounter PanelKind = "counter"
	// PanelHeap shows Go heap usage as a meter.
	PanelHeap PanelKind = "heap"
	// PanelFrameTime plots recent frame durations.
	PanelFrameTime PanelKind = "frametime"
	// PanelText shows fixed text.
	PanelText PanelKind = "text"
)

var panelKinds = []PanelKind{PanelCounter, PanelHeap, PanelFrameTime, PanelText}

// Panel is a validated panel.
type Panel struct {
	Title  string
	Kind   PanelKind
	Weight int
	Height int
	Text   string
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, or "" for defaults.
	Path       string
	Title      string
	Accent     rendering.Color
	Tick       time.Duration
	MaxDepth   int
	LogFile    string
	LogSizeMB  int
	LogBackups int
	Verbose    bool
	Panels     []Panel
}

// DefaultPanels is used when the config names none.
func DefaultPanels() []PanelConfig {
	return []PanelConfig{
		{Title: "frames", Kind: string(PanelCounter), Height: 3},
		{Title: "heap", Kind: string(PanelHeap), Height: 4},
		{Title: "frame time", Kind: string(PanelFrameTime), Weight: 1},
		{Title: "keys", Kind: string(PanelText), Height: 3, Text: "q quit"},
	}
}

// LoadOptional reads cellkit.yaml from dir if present. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := Load(path)
	if stderrors.Is(err, os.ErrNotExist) {
		return &Config{}, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF.
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError("config.Parse", err)
	}
	return &cfg, nil
}

// Resolve loads the config at path, or cellkit.yaml in dir when path is
// empty, and resolves defaults.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, path, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Resolve validates cfg and fills in defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Title:      strings.TrimSpace(cfg.App.Title),
		MaxDepth:   cfg.Engine.MaxDepth,
		LogFile:    strings.TrimSpace(cfg.Log.File),
		LogSizeMB:  cfg.Log.MaxSizeMB,
		LogBackups: cfg.Log.MaxBackups,
		Verbose:    cfg.Log.Verbose,
	}
	if r.Title == "" {
		r.Title = defaultTitle
	}
	if r.LogFile == "" {
		r.LogFile = defaultLogFile
	}
	if r.LogSizeMB <= 0 {
		r.LogSizeMB = defaultLogSizeMB
	}
	if r.MaxDepth < 0 {
		return nil, configError("config.Resolve", fmt.Errorf("engine.max_depth must not be negative (got %d)", r.MaxDepth))
	}

	accent, err := rendering.ParseColor(cfg.App.Accent)
	if err != nil {
		return nil, configError("config.Resolve", fmt.Errorf("app.accent: %w", err))
	}
	r.Accent = accent

	r.Tick = defaultTick
	if tick := strings.TrimSpace(cfg.Engine.Tick); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return nil, configError("config.Resolve", fmt.Errorf("engine.tick: %w", err))
		}
		if d < minTick {
			return nil, configError("config.Resolve", fmt.Errorf("engine.tick must be at least %s (got %s)", minTick, d))
		}
		r.Tick = d
	}

	panels := cfg.Panels
	if len(panels) == 0 {
		panels = DefaultPanels()
	}
	for i, pc := range panels {
		p, err := resolvePanel(pc)
		if err != nil {
			return nil, configError("config.Resolve", fmt.Errorf("panels[%d]: %w", i, err))
		}
		r.Panels = append(r.Panels, p)
	}
	return r, nil
}

func resolvePanel(pc PanelConfig) (Panel, error) {
	p := Panel{
		Title:  strings.TrimSpace(pc.Title),
		Kind:   PanelKind(strings.ToLower(strings.TrimSpace(pc.Kind))),
		Weight: pc.Weight,
		Height: pc.Height,
		Text:   pc.Text,
	}
	if !validKind(p.Kind) {
		return Panel{}, fmt.Errorf("unknown kind %q (want one of %s)", pc.Kind, kindList())
	}
	if p.Weight < 0 || p.Height < 0 {
		return Panel{}, fmt.Errorf("weight and height must not be negative")
	}
	if p.Weight > 0 && p.Height > 0 {
		return Panel{}, fmt.Errorf("set weight or height, not both")
	}
	if p.Height > 0 && p.Height < 3 {
		return Panel{}, fmt.Errorf("height must be at least 3 to fit the border (got %d)", p.Height)
	}
	if p.Weight == 0 && p.Height == 0 {
		p.Weight = 1
	}
	if p.Title == "" {
		p.Title = string(p.Kind)
	}
	return p, nil
}

func validKind(k PanelKind) bool {
	for _, known := range panelKinds {
		if k == known {
			return true
		}
	}
	return false
}

func kindList() string {
	names := make([]string, len(panelKinds))
	for i, k := range panelKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func configError(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
}
