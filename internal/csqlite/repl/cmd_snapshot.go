package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/csqlite/internal/csqlite/styled"
	"github.com/nsqlite/csqlite/sqlitec"
)

// cmdSnapshot takes two snapshots of the main schema inside a read
// transaction and compares them. The database must be in WAL mode.
func cmdSnapshot(r *Repl) {
	if !sqlitec.SnapshotsEnabled() {
		fmt.Println("This build has no snapshot support")
		return
	}

	if r.inTx {
		fmt.Println("Finish the current transaction before taking a snapshot")
		return
	}

	if err := r.conn.Exec("BEGIN"); err != nil {
		fmt.Println("Failed to begin read transaction:", err)
		return
	}
	defer func() {
		if err := r.conn.Exec("COMMIT"); err != nil {
			fmt.Println("Failed to end read transaction:", err)
		}
	}()

	// Snapshots need a read transaction that has actually started reading.
	if _, err := r.conn.Query("SELECT COUNT(*) FROM sqlite_master", nil); err != nil {
		fmt.Println("Failed to start read transaction:", err)
		return
	}

	first, err := r.conn.SnapshotGet("main")
	if err != nil {
		fmt.Println("Failed to take snapshot (is the database in WAL mode?):", err)
		return
	}
	defer first.Free()

	second, err := r.conn.SnapshotGet("main")
	if err != nil {
		fmt.Println("Failed to take second snapshot:", err)
		return
	}
	defer second.Free()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Snapshot", "Result"})
	tw.AppendRow(table.Row{"First vs second", sqlitec.SnapshotCompare(first, second)})
	tw.AppendRow(table.Row{"Second vs first", sqlitec.SnapshotCompare(second, first)})

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("Zero means both snapshots see the same state\n\n")
}
