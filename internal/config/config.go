// Package config implements the YAML-based CLI configuration (spec.md
// §4.K): default library path, default skip-bad setting, prototype-class
// classification overrides, and progress-monitor settings. CLI flags always
// override values loaded here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ernie/blueprint-decoder/internal/prototype"
)

// Monitor holds the progress-monitor settings (spec.md §4.J).
type Monitor struct {
	Port         int    `yaml:"port"`
	SecretSource string `yaml:"secret_source"` // path to a file holding the HMAC secret, or inline if it doesn't exist as a path
}

// Config is the top-level YAML document shape.
type Config struct {
	DefaultFile string            `yaml:"default_file"`
	SkipBad     bool              `yaml:"skip_bad"`
	Classes     map[string]string `yaml:"classes"` // prototype class -> kind name, merged over prototype.DefaultClassTable
	Monitor     Monitor           `yaml:"monitor"`
}

// Load reads and parses the YAML config at path.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ClassTable merges cfg's classification overrides over
// prototype.DefaultClassTable, letting a deployment teach the decoder about
// prototype classes introduced by mods (spec.md §4.B).
func (cfg *Config) ClassTable() (prototype.ClassTable, error) {
	defaults := prototype.DefaultClassTable()
	classes := make(prototype.ClassTable, len(defaults)+len(cfg.Classes))
	for class, kind := range defaults {
		classes[class] = kind
	}
	for class, kindName := range cfg.Classes {
		kind, ok := kindNames[kindName]
		if !ok {
			return nil, fmt.Errorf("config: unknown prototype kind %q for class %q", kindName, class)
		}
		classes[class] = kind
	}
	return classes, nil
}

var kindNames = map[string]prototype.Kind{
	"item":           prototype.Item,
	"fluid":          prototype.Fluid,
	"virtual-signal": prototype.VirtualSignal,
	"tile":           prototype.Tile,
	"entity":         prototype.Entity,
	"recipe":         prototype.Recipe,
}
