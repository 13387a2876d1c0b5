package repl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nsqlite/csqlite/internal/csqlite/config"
	"github.com/nsqlite/csqlite/internal/util/sysutil"
	"github.com/nsqlite/csqlite/sqlitec"
	"github.com/peterh/liner"
)

type Repl struct {
	conf        config.Config
	conn        *sqlitec.Conn
	ctx         context.Context
	stop        context.CancelFunc
	inTx        bool
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	conn *sqlitec.Conn,
) Repl {
	return Repl{
		conf:        conf,
		conn:        conn,
		ctx:         ctx,
		stop:        stop,
		historyPath: filepath.Join(os.TempDir(), ".csqlite_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Println()
	fmt.Printf("Connected to %s running SQLite %s\n", r.conf.DatabasePath, sqlitec.Version())
	fmt.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".tables" {
				cmdQuery(r, `SELECT name FROM sqlite_master WHERE type = 'table'`)
				continue
			}

			if input == ".schema" {
				cmdQuery(r, `SELECT sql FROM sqlite_master WHERE sql IS NOT NULL`)
				continue
			}

			if input == ".info" {
				cmdInfo(r)
				continue
			}

			if input == ".snapshot" {
				cmdSnapshot(r)
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(r, input)
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// setInTx tracks whether a transaction is open so the prompt can show it.
func (r *Repl) setInTx(inTx bool) {
	r.inTx = inTx
}

// cleanError removes the unwanted text from the error message. So, the error
// is more readable.
func (r *Repl) cleanError(errStr string) string {
	errStr = strings.ReplaceAll(errStr, "failed to prepare query:", "")
	errStr = strings.ReplaceAll(errStr, "failed to step statement:", "")
	return strings.TrimSpace(errStr)
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	label := "CSQLite> "
	if r.inTx {
		label = "CSQLite(tx)> "
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt(label)
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}
