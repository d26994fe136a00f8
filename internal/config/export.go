package config

type ExportConfig struct {
	Directory string `yaml:"dir" env:"EXPORT_DIR"`
}

func (s *ExportConfig) Dir() string {
	return s.Directory
}
