package config

type TelegramConfig struct {
	ApiToken string `yaml:"token" env:"TELEGRAM_TOKEN"`
	Owner    int64  `yaml:"owner-id" env:"TELEGRAM_OWNER_ID"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) OwnerID() int64 {
	return t.Owner
}

func (t *TelegramConfig) Enabled() bool {
	return t.ApiToken != ""
}
