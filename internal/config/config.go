package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Payment    PaymentConfig  `mapstructure:"payment"`
	Vendor     VendorConfig   `mapstructure:"vendor"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type PaymentConfig struct {
	CodePrice            float64 `mapstructure:"code_price"`
	GatewayPrice         float64 `mapstructure:"gateway_price"`
	GatewayURL           string  `mapstructure:"gateway_url"`
	ConfirmWindowSeconds int     `mapstructure:"confirm_window_seconds"`
	VerifyDelayMillis    int     `mapstructure:"verify_delay_ms"`
}

type VendorConfig struct {
	WhatsApp      string `mapstructure:"whatsapp"`
	AccountName   string `mapstructure:"account_name"`
	AccountNumber string `mapstructure:"account_number"`
	Bank          string `mapstructure:"bank"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Payment: PaymentConfig{
			CodePrice:            5500,
			GatewayPrice:         6520,
			GatewayURL:           "https://checkout.nomba.com/payment-link/4109674862",
			ConfirmWindowSeconds: 600,
			VerifyDelayMillis:    1200,
		},
		Vendor: VendorConfig{
			WhatsApp:      "+2348136347797",
			AccountName:   "Abdulrahim Usman",
			AccountNumber: "6511699109",
			Bank:          "Moniepoint",
		},
	}
}
