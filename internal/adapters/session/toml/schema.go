package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int    `toml:"version"`
	Token   string `toml:"token"`
	SavedAt string `toml:"saved_at,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
