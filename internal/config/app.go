package config

import "time"

type AppConfig struct {
	TimezoneName string `yaml:"timezone" env:"APP_TIMEZONE"`
	Currency     string `yaml:"currency-symbol" env:"APP_CURRENCY_SYMBOL"`
}

// Location is the calendar used for "today" and "this month".
func (s *AppConfig) Location() (*time.Location, error) {
	if s.TimezoneName == "" || s.TimezoneName == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.TimezoneName)
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Currency
}
