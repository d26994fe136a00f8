package config

import "time"

const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendMemcached = "memcached"
)

const defaultMarkerRetention = 30 * 24 * time.Hour

type StorageConfig struct {
	BackendName string `yaml:"backend" env:"STORAGE_BACKEND"`
	Path        string `yaml:"sqlite-path" env:"SQLITE_PATH"`
}

func (s *StorageConfig) Backend() string {
	return s.BackendName
}

func (s *StorageConfig) SQLitePath() string {
	return s.Path
}

type MarkerConfig struct {
	BackendName string        `yaml:"backend" env:"MARKER_BACKEND"`
	Retention   time.Duration `yaml:"retention" env:"MARKER_RETENTION"`
}

func (s *MarkerConfig) Backend() string {
	return s.BackendName
}

// RetentionPeriod is how long the storage medium keeps an elapsed marker readable.
func (s *MarkerConfig) RetentionPeriod() time.Duration {
	return s.Retention
}
