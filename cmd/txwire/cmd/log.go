package cmd

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/ssargent/txwire/pkg/inspect"
)

// logWriter sends all log output to stderr so stdout carries only command
// results
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	return os.Stderr.Write(p)
}

// Loggers per subsystem. A single backend logger is created and all
// subsystem loggers created from it will write to the backend.
var (
	backendLog = btclog.NewBackend(logWriter{})

	txwrLog = backendLog.Logger("TXWR")
	inspLog = backendLog.Logger(inspect.Subsystem)
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"TXWR":            txwrLog,
	inspect.Subsystem: inspLog,
}

func init() {
	inspect.UseLogger(inspLog)
}

// setLogLevels sets the log level for all subsystem loggers. An unknown level
// falls back to info.
func setLogLevels(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
