package config

import (
	"fmt"
	"os"
)

// Config holds everything the service reads from the environment.
// Load it once in main and pass it down; nothing else touches os.Getenv.
type Config struct {
	DBHost    string
	DBUser    string
	DBPass    string
	DBName    string
	JWTSecret string
	JWTIssuer string
	Port      string
}

// Load reads the configuration from environment variables. Call godotenv.Load
// before this if a .env file should be honored. A missing JWT_SECRET is not
// fatal here: login reports it as a server misconfiguration instead.
func Load() *Config {
	cfg := &Config{
		DBHost:    os.Getenv("DB_HOST"),
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: os.Getenv("JWT_ISSUER"),
		Port:      os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}

// DSN builds the MySQL connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBName)
}
