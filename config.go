package fsm

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// WildcardName is the category name that stands for "anything" in
// configuration files.
const WildcardName = "any"

// Config is a declarative rule table. It names categories by string;
// resolve it against a CategorySet to obtain a Builder. The initial state
// is a value, not a category, so it is supplied at Build time by the
// caller.
type Config struct {
	Name        string             `json:"name"        yaml:"name"`
	Transitions []TransitionConfig `json:"transitions" yaml:"transitions"`
}

// TransitionConfig declares one rule. From or To may be "any".
type TransitionConfig struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// LoadConfig loads a rule-table configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromFS loads a configuration from a filesystem, typically an
// embed.FS.
func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS: %w", err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads a configuration from YAML bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var config Config

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid. Category names are only
// resolvable against a CategorySet, so resolution errors surface in
// NewBuilderFromConfig rather than here.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrConfigNameRequired
	}

	if len(c.Transitions) == 0 {
		return ErrConfigTransitionsRequired
	}

	for i, transition := range c.Transitions {
		if transition.From == "" {
			return fmt.Errorf("transition %d: from is required (use %q for a wildcard)", i, WildcardName)
		}

		if transition.To == "" {
			return fmt.Errorf("transition %d: to is required (use %q for a wildcard)", i, WildcardName)
		}
	}

	return nil
}

// CategorySet resolves category names, as they appear in configuration
// files, to their declared Category values.
type CategorySet struct {
	byName map[string]*Category
}

// NewCategorySet builds a set from the given categories. Names must be
// unique; "any" is reserved for the wildcard.
func NewCategorySet(categories ...*Category) (*CategorySet, error) {
	byName := make(map[string]*Category, len(categories))

	for _, category := range categories {
		if category.Name() == WildcardName {
			return nil, fmt.Errorf("%w: %q is reserved", ErrDuplicateCategory, WildcardName)
		}

		if _, exists := byName[category.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, category.Name())
		}

		byName[category.Name()] = category
	}

	return &CategorySet{byName: byName}, nil
}

// Lookup resolves a config name to a filter: nil for the wildcard, the
// named category otherwise.
func (s *CategorySet) Lookup(name string) (*Category, error) {
	if name == WildcardName {
		return nil, nil //nolint:nilnil // nil filter is the wildcard, not an error
	}

	category, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}

	return category, nil
}

// NewBuilderFromConfig resolves a configuration against the given
// category set and returns a builder preloaded with its rules.
func NewBuilderFromConfig[T State](config *Config, categories *CategorySet) (*Builder[T], error) {
	builder := NewBuilder[T](config.Name)

	for i, transition := range config.Transitions {
		from, err := categories.Lookup(transition.From)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}

		to, err := categories.Lookup(transition.To)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}

		builder.AddTransition(from, to)
	}

	return builder, nil
}
