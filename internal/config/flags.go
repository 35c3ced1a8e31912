package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-d database DSN (sqlite path, bolt://path, postgres://..., :memory:)
//	-c/-config json file path with configs
//	-kdf-iterations PBKDF2 round count
//	-auto-lock idle duration before the vault locks (e.g. "5m")
//	-log-file log file path
//	-salt-key storage key of the salt
//	-envelope-key storage key of the envelope
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		dsn            string
		jsonConfigPath string
		kdfIterations  int
		autoLockAfter  time.Duration
		logFile        string
		saltKey        string
		envelopeKey    string
	)

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations")
	fs.DurationVar(&autoLockAfter, "auto-lock", 0, "Auto-lock after inactivity (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&saltKey, "salt-key", "", "Storage key of the salt")
	fs.StringVar(&envelopeKey, "envelope-key", "", "Storage key of the envelope")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KDFIterations: kdfIterations,
			AutoLockAfter: autoLockAfter,
			LogFile:       logFile,
		},
		Storage: Storage{
			DSN:         dsn,
			SaltKey:     saltKey,
			EnvelopeKey: envelopeKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
