package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sheetlingo/internal"
)

// Store persists prompt configurations under a directory. The active
// configuration lives in active.json, presets as individual JSON files
// under presets/.
type Store struct {
	dir        string
	activeFile string
	presetsDir string
}

// NewStore creates a store rooted at dir. Directories are created lazily
// on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:        dir,
		activeFile: filepath.Join(dir, "active.json"),
		presetsDir: filepath.Join(dir, "presets"),
	}
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Active loads the active configuration. When none has been saved yet the
// built-in default is returned.
func (s *Store) Active() (*Config, error) {
	if _, err := os.Stat(s.activeFile); os.IsNotExist(err) {
		return Default(), nil
	}
	cfg, err := readConfig(s.activeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load active configuration: %w", err)
	}
	return cfg, nil
}

// SaveActive writes cfg as the active configuration, stamping its
// modification time.
func (s *Store) SaveActive(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	stamp(cfg)
	if err := writeConfig(s.activeFile, cfg); err != nil {
		return fmt.Errorf("failed to save active configuration: %w", err)
	}
	return nil
}

// Preset loads the named preset.
func (s *Store) Preset(name string) (*Config, error) {
	cfg, err := readConfig(s.presetFile(name))
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %q: %w", name, err)
	}
	return cfg, nil
}

// SavePreset writes cfg as a preset named after cfg.Name.
func (s *Store) SavePreset(cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("preset name is empty")
	}
	if err := os.MkdirAll(s.presetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create presets directory: %w", err)
	}
	stamp(cfg)
	if err := writeConfig(s.presetFile(cfg.Name), cfg); err != nil {
		return fmt.Errorf("failed to save preset %q: %w", cfg.Name, err)
	}
	return nil
}

// DeletePreset removes the named preset file.
func (s *Store) DeletePreset(name string) error {
	if err := os.Remove(s.presetFile(name)); err != nil {
		return fmt.Errorf("failed to delete preset %q: %w", name, err)
	}
	return nil
}

// Presets lists the available preset names, sorted alphabetically. Names
// come from the configuration inside each file, falling back to the file
// name when a file cannot be read.
func (s *Store) Presets() ([]string, error) {
	entries, err := os.ReadDir(s.presetsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		if cfg, err := readConfig(filepath.Join(s.presetsDir, entry.Name())); err == nil && cfg.Name != "" {
			name = cfg.Name
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Init writes the built-in presets to the presets directory, skipping any
// preset that already exists so local edits survive. It returns the names
// of the presets it wrote.
func (s *Store) Init() ([]string, error) {
	if err := os.MkdirAll(s.presetsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create presets directory: %w", err)
	}

	var written []string
	for _, cfg := range BuiltinPresets() {
		path := s.presetFile(cfg.Name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		stamp(cfg)
		if err := writeConfig(path, cfg); err != nil {
			return written, fmt.Errorf("failed to write preset %q: %w", cfg.Name, err)
		}
		written = append(written, cfg.Name)
	}
	return written, nil
}

func (s *Store) presetFile(name string) string {
	return filepath.Join(s.presetsDir, internal.SanitizeFilename(name)+".json")
}

func stamp(cfg *Config) {
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.ModifiedAt = now
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

func writeConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
