package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Development gets the console encoder.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
