package config

type AMQPConfig struct {
	Address      string `yaml:"url" env:"AMQP_URL"`
	ExchangeName string `yaml:"exchange" env:"AMQP_EXCHANGE"`
	Key          string `yaml:"routing-key" env:"AMQP_ROUTING_KEY"`
}

func (s *AMQPConfig) URL() string {
	return s.Address
}

func (s *AMQPConfig) Exchange() string {
	return s.ExchangeName
}

func (s *AMQPConfig) RoutingKey() string {
	return s.Key
}

func (s *AMQPConfig) Enabled() bool {
	return s.Address != ""
}
