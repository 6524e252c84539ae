package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string        `env:"APP_PORT" envDefault:"8080"`
	DbHost         string        `env:"MYSQL_HOST" envDefault:"db"`
	DbPort         string        `env:"MYSQL_PORT" envDefault:"3306"`
	DbUser         string        `env:"MYSQL_USER" envDefault:"kanmind"`
	DbPassword     string        `env:"MYSQL_PASSWORD" envDefault:"kanmind"`
	DbName         string        `env:"MYSQL_DATABASE" envDefault:"kanmind"`
	DbParams       string        `env:"MYSQL_PARAMS" envDefault:"parseTime=true&multiStatements=true"`
	JWTSecret      string        `env:"JWT_SECRET,notEmpty"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"24h"`
	TrustedProxies []string      `env:"TRUSTED_PROXIES"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
