// Package config provides hierarchical configuration loading for Pixel Pigeon.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the mail gateway.
type Config struct {
	Server    Server    `yaml:"server"`
	SMTP      SMTP      `yaml:"smtp"`
	Tokens    Tokens    `yaml:"tokens"`
	Logo      Logo      `yaml:"logo"`
	Logging   Logging   `yaml:"logging"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

// SMTP holds mail relay connection configuration.
// Username, Password and From have no defaults; they must come from the
// YAML file or the environment.
type SMTP struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	From        string        `yaml:"from"`
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// Tokens holds the location of the token→recipients JSON file.
type Tokens struct {
	File string `yaml:"file"`
}

// Logo holds the inline logo image location.
type Logo struct {
	Path string `yaml:"path"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Telemetry holds the OTLP exporter endpoint. Empty disables export.
type Telemetry struct {
	Endpoint string `yaml:"endpoint"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:       "8080",
			CORSOrigin: "http://localhost:3000",
		},
		SMTP: SMTP{
			Host:        "smtp.gmail.com",
			Port:        587,
			SendTimeout: 30 * time.Second,
		},
		Tokens: Tokens{
			File: "/app/config.json",
		},
		Logo: Logo{
			Path: "/app/logo.jpg",
		},
		Logging: Logging{
			Level:   "info",
			Service: "pixel-pigeon",
		},
	}
}
