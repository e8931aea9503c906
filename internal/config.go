package internal

import "time"

type Config struct {
	Host           string `env:"HOST,required=true"`
	Port           int    `env:"PORT,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	// UpdateRetries bounds how often a conflicting store transaction is
	// retried before the conflict is reported to the caller.
	UpdateRetries   int           `env:"UPDATE_RETRIES,required=true"`
	GCInterval      time.Duration `env:"GC_INTERVAL,required=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
}
