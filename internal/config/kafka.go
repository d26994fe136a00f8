package config

type KafkaConfig struct {
	BrokerList  []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	EventsTopic string   `yaml:"topic" env:"KAFKA_TOPIC"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) Topic() string {
	return s.EventsTopic
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
