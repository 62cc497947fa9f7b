package store

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fathomhq/fathom/internal/model"
)

// DefaultConfigFile is the default configuration file name
const DefaultConfigFile = ".fathom.yml"

// YAMLStore reads and writes the configuration and the feature catalog as
// YAML documents
type YAMLStore struct {
	configFile string
}

// NewYAMLStore creates a new YAML store with the given config file path
func NewYAMLStore(configFile string) *YAMLStore {
	return &YAMLStore{configFile: configFile}
}

// LoadConfig loads the estimation configuration. If no specific config file
// is set, it searches for the default file starting from the current
// directory and traversing up to parent directories; if nothing is found
// the default configuration is returned.
func (s *YAMLStore) LoadConfig() (model.EstimationConfig, error) {
	if s.configFile != "" {
		return s.loadConfigFromFile(s.configFile)
	}

	configPath, err := findConfigFile(DefaultConfigFile)
	if err != nil {
		return model.EstimationConfig{}, err
	}
	if configPath == "" {
		return model.DefaultEstimationConfig(), nil
	}
	return s.loadConfigFromFile(configPath)
}

// findConfigFile searches for the config file starting from the current
// directory and traversing up until it finds the file or reaches the root
func findConfigFile(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (s *YAMLStore) loadConfigFromFile(configPath string) (model.EstimationConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultEstimationConfig(), nil
		}
		return model.EstimationConfig{}, err
	}

	config := model.DefaultEstimationConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return model.EstimationConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return model.EstimationConfig{}, err
	}
	return config, nil
}

// SaveConfig saves the configuration. With no explicit config file it
// writes back to the discovered one, so editing the configuration from a
// subdirectory does not fork a second file there; only when no config file
// exists anywhere up the tree is a new one created in the current directory.
func (s *YAMLStore) SaveConfig(config model.EstimationConfig) error {
	configPath := s.configFile
	if configPath == "" {
		discovered, err := findConfigFile(DefaultConfigFile)
		if err != nil {
			return err
		}
		configPath = discovered
		if configPath == "" {
			configPath = DefaultConfigFile
		}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// catalogDocument is the on-disk shape of the feature catalog
type catalogDocument struct {
	Features []*model.Feature `yaml:"features"`
}

// LoadCatalog loads the feature catalog from a file. A missing file yields
// an empty catalog.
func (s *YAMLStore) LoadCatalog(path string) ([]*model.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	doc := &catalogDocument{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc.Features, nil
}

// SaveCatalog saves the feature catalog to a file
func (s *YAMLStore) SaveCatalog(path string, features []*model.Feature) error {
	data, err := yaml.Marshal(&catalogDocument{Features: features})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
