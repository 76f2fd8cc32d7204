package config

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"bikeshare/domain/entities/selection"
	explorerErrors "bikeshare/explorer/errors"
	"bikeshare/utils"
)

const configFilepath = "./explorer/config/config.yaml"

const (
	defaultLogLevel       = "warning"
	defaultStartLayout    = "2006-01-02 15:04:05"
	defaultSampleSize     = 5
	defaultSeparatorWidth = 40
)

// ExplorerConfig configuration of the bikeshare explorer
// + LogLevel: logrus level
// + DataDirectory: directory that contains the city files
// + Datasets: map with the structure {city: file name}
// + StartTimeLayouts: layouts tried, in order, to parse the Start Time column
// + SampleSize: amount of rows shown when the user asks for a sample
// + SeparatorWidth: width of the line printed between sections
type ExplorerConfig struct {
	LogLevel         string            `yaml:"log_level"`
	DataDirectory    string            `yaml:"data_directory"`
	Datasets         map[string]string `yaml:"datasets"`
	StartTimeLayouts []string          `yaml:"start_time_layouts"`
	SampleSize       int               `yaml:"sample_size"`
	SeparatorWidth   int               `yaml:"separator_width"`
}

func LoadConfig() (*ExplorerConfig, error) {
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(path string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig parses the YAML bytes, sets defaults for the missing values and validates the result
func ParseConfig(configBytes []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configBytes, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	explorerConfig.setDefaults()

	err = explorerConfig.Validate()
	if err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Validate checks that each city resolves to exactly one file
func (ec *ExplorerConfig) Validate() error {
	for _, city := range selection.Cities() {
		filename, ok := ec.Datasets[city]
		if !ok || filename == "" {
			return errors.Wrapf(explorerErrors.ErrInvalidConfig, "no dataset configured for city '%s'", city)
		}
	}

	for city := range ec.Datasets {
		if !selection.IsValidCity(city) {
			return errors.Wrapf(explorerErrors.ErrInvalidConfig, "dataset configured for unknown city '%s'", city)
		}
	}

	if ec.SampleSize <= 0 {
		return errors.Wrapf(explorerErrors.ErrInvalidConfig, "sample size must be greater than 0, got %v", ec.SampleSize)
	}

	return nil
}

// GetDatasetPath returns the path of the file of the given city
func (ec *ExplorerConfig) GetDatasetPath(city string) (string, error) {
	filename, ok := ec.Datasets[city]
	if !ok {
		return "", errors.Wrapf(explorerErrors.ErrUnknownCity, "city '%s'", city)
	}
	return filepath.Join(ec.DataDirectory, filename), nil
}

func (ec *ExplorerConfig) setDefaults() {
	if ec.LogLevel == "" {
		ec.LogLevel = defaultLogLevel
	}

	if len(ec.StartTimeLayouts) == 0 {
		ec.StartTimeLayouts = []string{defaultStartLayout}
	}

	if ec.SampleSize == 0 {
		ec.SampleSize = defaultSampleSize
	}

	if ec.SeparatorWidth <= 0 {
		ec.SeparatorWidth = defaultSeparatorWidth
	}
}
