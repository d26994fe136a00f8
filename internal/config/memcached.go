package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts" env:"MEMCACHED_HOSTS" envSeparator:","`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}
