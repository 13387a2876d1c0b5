package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/csqlite/internal/csqlite/styled"
	"github.com/nsqlite/csqlite/internal/util/numutil"
	"github.com/nsqlite/csqlite/internal/util/procutil"
	"github.com/nsqlite/csqlite/sqlitec"
)

func cmdInfo(r *Repl) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Property", "Value"})

	tw.AppendRow(table.Row{"Database", r.conf.DatabasePath})
	tw.AppendRow(table.Row{"SQLite version", sqlitec.Version()})
	tw.AppendRow(table.Row{"SQLite version number", numutil.IntWithCommas(sqlitec.VersionNumber())})
	tw.AppendRow(table.Row{"Snapshots enabled", sqlitec.SnapshotsEnabled()})
	tw.AppendRow(table.Row{"DQS toggles supported", sqlitec.DoubleQuotedStringLiteralsSupported()})
	tw.AppendRow(table.Row{"ENABLE_SNAPSHOT compiled", sqlitec.CompileOptionUsed("ENABLE_SNAPSHOT")})
	tw.AppendRow(table.Row{"ENABLE_PREUPDATE_HOOK compiled", sqlitec.CompileOptionUsed("ENABLE_PREUPDATE_HOOK")})

	threads := procutil.ThreadCount()
	if threads < 0 {
		tw.AppendRow(table.Row{"OS threads", "unavailable"})
	} else {
		tw.AppendRow(table.Row{"OS threads", threads})
	}

	fmt.Println(tw.Render())
}
