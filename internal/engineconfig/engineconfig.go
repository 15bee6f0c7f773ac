package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ballmachine/internal/court"
	"ballmachine/internal/session"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnvFile is read for overrides before the process environment is consulted.
const EnvFile = ".env"

var ErrUnknownPreset = errors.New("unknown preset")

// EnginePrefs holds engine-only preferences (debug overlays, grid, preset, audio). Persisted across runs.
type EnginePrefs struct {
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	GridVisible  bool   `yaml:"grid_visible"`
	Preset       string `yaml:"preset"`
	Difficulty   string `yaml:"difficulty,omitempty"`
	Audio        bool   `yaml:"audio"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// File is the on-disk layout of config/engine.yaml.
type File struct {
	Prefs   EnginePrefs              `yaml:"prefs"`
	Presets map[string]session.Setup `yaml:"presets"`
}

// Default returns default engine preferences (debug overlays off, grid on, classic preset).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		Preset:       "classic",
		Audio:        true,
		LogLevel:     "info",
	}
}

// Builtin returns the two stock presets. classic drives the launcher directly and
// draws no trails; arcade eases the drive, keeps the launcher on the court, draws
// trails and sends in the mega-ball.
func Builtin() map[string]session.Setup {
	classic := session.DefaultSetup()

	arcade := session.DefaultSetup()
	arcade.Physics.Launcher.SmoothedDrive = true
	arcade.Physics.Launcher.CourtHalfX = court.FieldWidth / 2
	arcade.Physics.Launcher.CourtHalfZ = court.FieldLength / 2
	arcade.Physics.BallTrail = true
	arcade.Physics.MegaBall.Enabled = true

	return map[string]session.Setup{"classic": classic, "arcade": arcade}
}

// DefaultFile returns the default prefs and the builtin presets.
func DefaultFile() File {
	return File{Prefs: Default(), Presets: Builtin()}
}

// Load reads config/engine.yaml. A missing file yields DefaultFile() and no error;
// an unreadable or invalid one yields DefaultFile() and the error.
func Load() (File, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom is Load with an explicit path.
func LoadFrom(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFile(), nil
		}
		return DefaultFile(), err
	}
	f, err := Parse(data)
	if err != nil {
		return DefaultFile(), fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a config document. Prefs start from Default(); each preset is
// decoded on top of the builtin of the same name, or on top of the default setup,
// so a file only needs the fields it changes.
func Parse(data []byte) (File, error) {
	f := DefaultFile()

	var doc struct {
		Prefs   yaml.Node            `yaml:"prefs"`
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return f, err
	}
	if !doc.Prefs.IsZero() {
		if err := doc.Prefs.Decode(&f.Prefs); err != nil {
			return DefaultFile(), fmt.Errorf("prefs: %w", err)
		}
	}
	for name, node := range doc.Presets {
		base, ok := f.Presets[name]
		if !ok {
			base = session.DefaultSetup()
		}
		setup, err := clone(base)
		if err != nil {
			return DefaultFile(), err
		}
		if err := node.Decode(&setup); err != nil {
			return DefaultFile(), fmt.Errorf("preset %q: %w", name, err)
		}
		f.Presets[name] = setup
	}
	return f, nil
}

// Preset returns a validated deep copy of the named preset.
func (f File) Preset(name string) (session.Setup, error) {
	base, ok := f.Presets[name]
	if !ok {
		return session.Setup{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	setup, err := clone(base)
	if err != nil {
		return session.Setup{}, err
	}
	if err := setup.Validate(); err != nil {
		return session.Setup{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return setup, nil
}

// PresetNames returns the preset names in alphabetical order.
func (f File) PresetNames() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes f to config/engine.yaml, creating the config directory if needed.
func Save(f File) error {
	return SaveTo(EngineConfigPath, f)
}

// SaveTo is Save with an explicit path.
func SaveTo(path string, f File) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnv reads .env (missing is fine) and applies BALLMACHINE_* overrides to p.
// Variables already set in the process environment win over the file.
func LoadEnv(p *EnginePrefs) {
	_ = godotenv.Load(EnvFile)

	p.Preset = getEnv("BALLMACHINE_PRESET", p.Preset)
	p.Difficulty = getEnv("BALLMACHINE_DIFFICULTY", p.Difficulty)
	p.LogLevel = getEnv("BALLMACHINE_LOG_LEVEL", p.LogLevel)
	p.ShowFPS = getEnvBool("BALLMACHINE_SHOW_FPS", p.ShowFPS)
	p.Audio = getEnvBool("BALLMACHINE_AUDIO", p.Audio)
}

func clone(s session.Setup) (session.Setup, error) {
	var out session.Setup
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		return session.Setup{}, err
	}
	return out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
