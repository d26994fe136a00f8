package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Marker    MarkerConfig    `yaml:"marker"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Export    ExportConfig    `yaml:"export"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	AMQP      AMQPConfig      `yaml:"amqp"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML config file (if any), then applies environment overrides.
// A .env file in the working directory is loaded first when present.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}
	return Load(path)
}

func Load(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	case os.IsNotExist(err):
		// defaults plus environment
	default:
		return nil, errors.Wrap(err, "reading config file")
	}

	if err = env.Parse(&s.config); err != nil {
		return nil, errors.Wrap(err, "parsing env")
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			TimezoneName: "Local",
			Currency:     "$",
		},
		Storage: StorageConfig{
			BackendName: BackendSQLite,
			Path:        "data/expenses.db",
		},
		Marker: MarkerConfig{
			BackendName: BackendSQLite,
			Retention:   defaultMarkerRetention,
		},
		Export: ExportConfig{
			Directory: "exports",
		},
		Tracing: TracingConfig{
			Service: "daily-expenses",
		},
	}
}

// Validate reports every configuration problem at once.
func (s *Service) Validate() error {
	var problems []string

	if _, err := s.config.App.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone %q: %v", s.config.App.TimezoneName, err))
	}

	switch s.config.Storage.BackendName {
	case BackendMemory:
	case BackendSQLite:
		if s.config.Storage.Path == "" {
			problems = append(problems, "storage sqlite-path cannot be empty for sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown storage backend %q", s.config.Storage.BackendName))
	}

	switch s.config.Marker.BackendName {
	case BackendMemory:
		if s.config.Storage.BackendName != BackendMemory {
			problems = append(problems, "memory marker backend requires memory storage backend")
		}
	case BackendSQLite:
		if s.config.Storage.Path == "" {
			problems = append(problems, "marker sqlite backend needs storage sqlite-path")
		}
	case BackendMemcached:
		if len(s.config.Memcached.NodeHosts) == 0 {
			problems = append(problems, "memcached hosts are required for memcached marker backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown marker backend %q", s.config.Marker.BackendName))
	}
	if s.config.Marker.Retention <= 0 {
		problems = append(problems, "marker retention must be positive")
	}

	if s.config.Export.Directory == "" {
		problems = append(problems, "export dir cannot be empty")
	}

	if s.config.Telegram.ApiToken != "" && s.config.Telegram.Owner == 0 {
		problems = append(problems, "telegram owner-id is required when a token is set")
	}

	if len(s.config.Kafka.BrokerList) > 0 && s.config.Kafka.EventsTopic == "" {
		problems = append(problems, "kafka topic is required when brokers are set")
	}

	if s.config.AMQP.Address != "" && s.config.AMQP.ExchangeName == "" {
		problems = append(problems, "amqp exchange is required when url is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Marker() *MarkerConfig {
	return &s.config.Marker
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Export() *ExportConfig {
	return &s.config.Export
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) AMQP() *AMQPConfig {
	return &s.config.AMQP
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
