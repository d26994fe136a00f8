package config

type TracingConfig struct {
	On      bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	Service string `yaml:"service-name" env:"TRACING_SERVICE_NAME"`
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}
