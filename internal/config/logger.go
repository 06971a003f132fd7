package config

import "go.uber.org/zap"

// NewLogger builds the process logger: human-readable in development,
// JSON otherwise.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
