package gamedata

import "errors"

// LevelRegistry holds loaded level definitions.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
