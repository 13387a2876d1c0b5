package repl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/csqlite/internal/csqlite/styled"
)

type dotCmd struct {
	name         string
	autocomplete string
	help         string
}

func cmdHelpCommands() []dotCmd {
	cmds := []dotCmd{
		{name: ".tables", autocomplete: ".tables", help: "List all tables in the database"},
		{name: ".schema", autocomplete: ".schema", help: "List all schema in the database"},
		{name: ".info", autocomplete: ".info", help: "Show the SQLite build and connection details"},
		{name: ".snapshot", autocomplete: ".snapshot", help: "Take two snapshots of the database and compare them"},
		{name: ".clear", autocomplete: ".clear", help: "Clear the terminal screen"},
		{name: ".help", autocomplete: ".help", help: "Show the help message"},
		{name: ".quit", autocomplete: ".quit", help: "Exit the application"},
		{name: ".exit", autocomplete: ".exit", help: "Exit the application"},
		{name: "CTRL+c", help: "Exit the application"},
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

func cmdHelp() {
	fmt.Println("Available commands:")
	cmds := cmdHelpCommands()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description"})

	for _, cmd := range cmds {
		tw.AppendRow(table.Row{cmd.name, cmd.help})
	}

	fmt.Println(tw.Render())
}

func cmdHelpCompleter(line string) []string {
	suggestions := []string{
		"SELECT ",
		"SELECT * FROM ",
		"SELECT COUNT(*) FROM ",
		"INSERT INTO ",
		"UPDATE",
		"DELETE FROM ",
		"CREATE TABLE ",
		"DROP TABLE ",
		"ALTER TABLE ",
		"BEGIN",
		"COMMIT",
		"ROLLBACK",
	}

	for _, cmd := range cmdHelpCommands() {
		if cmd.autocomplete != "" {
			suggestions = append(suggestions, cmd.autocomplete)
		}
	}

	results := []string{}
	for _, suggestion := range suggestions {
		if strings.HasPrefix(strings.ToLower(suggestion), strings.ToLower(line)) {
			results = append(results, suggestion)
		}
	}

	return results
}
