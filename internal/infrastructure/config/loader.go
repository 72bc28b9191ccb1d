package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ActorFile = "actor.yaml"
	WorldFile = "world.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Actor *ActorConfig
	World *WorldConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func load[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return parse[T](data, name)
}

func parse[T any](data []byte, name string) (*T, error) {
	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// ParseActor decodes and validates actor.yaml content, such as the copy
// stored in a replay.
func ParseActor(data []byte) (*ActorConfig, error) {
	cfg, err := parse[ActorConfig](data, ActorFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ActorFile, err)
	}
	return cfg, nil
}

// LoadActor loads and validates actor.yaml
func (l *Loader) LoadActor() (*ActorConfig, error) {
	data, err := l.ReadActor()
	if err != nil {
		return nil, err
	}
	return ParseActor(data)
}

// ReadActor returns the raw actor.yaml bytes.
func (l *Loader) ReadActor() ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, ActorFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ActorFile, err)
	}
	return data, nil
}

// LoadWorld loads world.yaml
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	cfg, err := load[WorldConfig](l.fsys, WorldFile)
	if err != nil {
		return nil, err
	}
	if cfg.Display.Framerate <= 0 {
		return nil, fmt.Errorf("invalid %s: framerate must be positive", WorldFile)
	}
	if cfg.Display.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("invalid %s: pixels_per_unit must be positive", WorldFile)
	}
	return cfg, nil
}

// LoadAll loads all base configurations (actor, world)
func (l *Loader) LoadAll() (*GameConfig, error) {
	actorCfg, err := l.LoadActor()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Actor: actorCfg,
		World: world,
	}, nil
}
