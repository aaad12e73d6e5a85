package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the service needs from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr    string
	RoleCacheTTL time.Duration

	RabbitURL string

	MapsAPIKey string

	NotifyPollInterval time.Duration
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
