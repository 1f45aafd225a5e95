// Package levelconfig merges admin overrides onto the static level
// catalog. Overrides live in one JSON blob in the object store; an
// unreadable blob degrades to "no overrides" rather than failing pages.
package levelconfig

import (
	"errors"
	"strings"

	"alwafi_go/program"
	"alwafi_go/storage"

	"github.com/sirupsen/logrus"
)

// ConfigKey is the blob holding all level overrides.
const ConfigKey = "admin/levels-config.json"

var (
	ErrUnknownLevel      = errors.New("unknown level")
	ErrNameRequired      = errors.New("name is required")
	ErrShortNameRequired = errors.New("short name is required")
	ErrNoSubjects        = errors.New("at least one subject is required")
)

// Override is an admin's partial replacement of a level's defaults.
// Leader is a pointer: an explicitly empty string means "no leader" and
// must be honored, unlike an absent field.
type Override struct {
	Name      string            `json:"name,omitempty"`
	ShortName string            `json:"short_name,omitempty"`
	Leader    *string           `json:"leader,omitempty"`
	Subjects  []program.Subject `json:"subjects,omitempty"`
}

// Config maps level id to its stored override.
type Config map[string]Override

// MergeLevel returns the effective level: each overridden field replaces
// the default wholesale; everything else stays. The subjects list is
// never deep-merged.
func MergeLevel(levelID string, cfg Config) (program.Level, error) {
	base, ok := program.LevelByID(levelID)
	if !ok {
		return program.Level{}, ErrUnknownLevel
	}
	o, ok := cfg[levelID]
	if !ok {
		return base, nil
	}

	merged := base
	if o.Name != "" {
		merged.Name = o.Name
	}
	if o.ShortName != "" {
		merged.ShortName = o.ShortName
	}
	if o.Leader != nil {
		merged.Leader = *o.Leader
	}
	if o.Subjects != nil {
		merged.Subjects = o.Subjects
	}
	return merged, nil
}

// MergeAll returns the whole catalog with overrides applied, in display
// order.
func MergeAll(cfg Config) []program.Level {
	out := make([]program.Level, 0, len(program.LevelOrder))
	for _, id := range program.LevelOrder {
		merged, err := MergeLevel(id, cfg)
		if err != nil {
			continue
		}
		out = append(out, merged)
	}
	return out
}

type Service struct {
	storage *storage.StorageService
}

func NewService(st *storage.StorageService) *Service {
	return &Service{storage: st}
}

// LoadConfig fetches the override blob. Missing or unreadable config is
// treated as "no overrides".
func (s *Service) LoadConfig() Config {
	cfg := Config{}
	found, err := s.storage.GetJSON(ConfigKey, &cfg)
	if err != nil {
		logrus.WithError(err).Warn("failed to load level config, using defaults")
		return Config{}
	}
	if !found {
		return Config{}
	}
	return cfg
}

// MergedLevel returns the effective level for id.
func (s *Service) MergedLevel(levelID string) (program.Level, error) {
	return MergeLevel(levelID, s.LoadConfig())
}

// MergedLevels returns the effective catalog.
func (s *Service) MergedLevels() []program.Level {
	return MergeAll(s.LoadConfig())
}

// SaveOverride validates and stores the override for levelID, fully
// replacing any previous override for that level. A rejected save writes
// nothing.
func (s *Service) SaveOverride(levelID string, o Override) error {
	if _, ok := program.LevelByID(levelID); !ok {
		return ErrUnknownLevel
	}

	o.Name = strings.TrimSpace(o.Name)
	o.ShortName = strings.TrimSpace(o.ShortName)
	if o.Name == "" {
		return ErrNameRequired
	}
	if o.ShortName == "" {
		return ErrShortNameRequired
	}
	if o.Leader != nil {
		trimmed := strings.TrimSpace(*o.Leader)
		o.Leader = &trimmed
	}
	if o.Subjects != nil {
		kept := make([]program.Subject, 0, len(o.Subjects))
		for _, subj := range o.Subjects {
			subj.Name = strings.TrimSpace(subj.Name)
			if subj.Name == "" {
				continue
			}
			kept = append(kept, subj)
		}
		if len(kept) == 0 {
			return ErrNoSubjects
		}
		o.Subjects = kept
	}

	cfg := s.LoadConfig()
	cfg[levelID] = o
	return s.storage.PutJSON(ConfigKey, cfg)
}

// Reset removes the stored override so merges return pure defaults.
// Resetting a level that has no override is a no-op.
func (s *Service) Reset(levelID string) error {
	if _, ok := program.LevelByID(levelID); !ok {
		return ErrUnknownLevel
	}

	cfg := s.LoadConfig()
	if _, ok := cfg[levelID]; !ok {
		return nil
	}
	delete(cfg, levelID)
	return s.storage.PutJSON(ConfigKey, cfg)
}
