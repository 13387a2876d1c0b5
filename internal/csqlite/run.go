package csqlite

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqlite/csqlite/internal/csqlite/config"
	"github.com/nsqlite/csqlite/internal/csqlite/repl"
	"github.com/nsqlite/csqlite/internal/log"
	"github.com/nsqlite/csqlite/internal/version"
	"github.com/nsqlite/csqlite/sqlitec"
)

// Run runs the csqlite shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.CLIVersion())

	logger := log.NewLogger(os.Stderr)

	// The error log callback can only be installed before the library is
	// initialized, so this has to happen before the first Open.
	if err := sqlitec.ConfigErrorLog(func(code int, msg string) {
		logger.WarnNs("sqlite", msg, log.KV{"code": code})
	}); err != nil {
		logger.Warn("failed to register SQLite error log callback", log.KV{"error": err.Error()})
	}

	conn, err := sqlitec.Open(conf.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", conf.DatabasePath, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := conn.BusyTimeout(int(conf.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	switch conf.DQS {
	case "on":
		conn.EnableDoubleQuotedStringLiterals()
	case "off":
		conn.DisableDoubleQuotedStringLiterals()
	}

	rp := repl.NewRepl(ctx, stop, conf, conn)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
