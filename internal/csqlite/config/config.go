package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/csqlite/internal/version"
)

// Config represents the configuration for the csqlite shell.
type Config struct {
	DatabasePath string        `arg:"positional" help:"Path to the SQLite database file (defaults to an in-memory database)" default:":memory:"`
	DQS          string        `arg:"--dqs,env:CSQLITE_DQS" help:"Double-quoted string literals: default, on or off" default:"default"`
	BusyTimeout  time.Duration `arg:"--busy-timeout,env:CSQLITE_BUSY_TIMEOUT" help:"How long a connection waits on a locked table before failing. Valid time units are ns, us (or µs), ms, s, m, h" default:"5s"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDQS(cfg.DQS); err != nil {
		log.Fatal(err)
	}

	if err := validateBusyTimeout(cfg.BusyTimeout); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateDQS validates the double-quoted string literal mode.
func validateDQS(mode string) error {
	switch mode {
	case "default", "on", "off":
		return nil
	}
	return errors.New("invalid dqs mode, valid values are: default, on, off")
}

// validateBusyTimeout validates that the busy timeout is not negative.
func validateBusyTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return errors.New("invalid busy timeout, must be zero or greater")
	}
	return nil
}
