package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration

type Configuration struct {
	Server    Server  `debugmap:"visible"`
	Storage   Storage `debugmap:"visible"`
	Auth      Auth    `debugmap:"visible"`
	LogLevel  string  `debugmap:"visible" default:"info"`
	LogFormat string  `debugmap:"visible" default:"console"`
	EnvFile   string  `debugmap:"visible"`
}

type Server struct {
	HTTPPort        int           `default:"8000"`
	ServerMode      string        `default:"dev"`
	StaticsFolder   string
	ShutdownTimeout time.Duration `default:"10s"`
}

type Storage struct {
	DatabasePath string `default:":memory:"`
	SeedFile     string
}

type Auth struct {
	Enabled     bool   `default:"false"`
	JWTFilePath string
	Issuer      string `default:"filter-clauses"`
}
