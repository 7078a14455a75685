package config

import (
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"local"`
	Log   LogConfig   `yaml:"log"`
	Run   RunConfig   `yaml:"run"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type RunConfig struct {
	SourceDir     string   `yaml:"source_dir" env:"WINEXC_SOURCE_DIR" env-default:"."`
	OutputDir     string   `yaml:"output_dir" env:"WINEXC_OUTPUT_DIR" env-default:"."`
	Holiday       string   `yaml:"holiday" env:"WINEXC_HOLIDAY"`
	Sunday        string   `yaml:"sunday" env:"WINEXC_SUNDAY"`
	ReferencePath string   `yaml:"reference_path" env:"WINEXC_REFERENCE_PATH"`
	ClosedDates   []string `yaml:"closed_dates" env:"WINEXC_CLOSED_DATES" env-separator:","`
	Strict        bool     `yaml:"strict" env:"WINEXC_STRICT"`
}

type KafkaConfig struct {
	Brokers []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"window-exceptions"`
	Timeout time.Duration `yaml:"timeout" env:"KAFKA_TIMEOUT" env-default:"10s"`
}

// Enabled reports whether run notifications should be published
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// ClosedDateValues parses closed dates given as MM/dd/yyyy or yyyy-MM-dd
func (c RunConfig) ClosedDateValues() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(c.ClosedDates))
	for _, raw := range c.ClosedDates {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		date, err := parseDate(value)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"01/02/2006", time.DateOnly} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid closed date %q", value)
}

// Load reads the YAML file at path, then the environment. With an empty
// path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "read config from env")
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("config file does not exist: %s", path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return &cfg, nil
}

// FetchPath returns the flag value, falling back to CONFIG_PATH
func FetchPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}
