package repl

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/csqlite/internal/csqlite/styled"
)

func cmdQuery(r *Repl, input string) {
	tw := styled.NewTableWriter()

	res, err := r.conn.Query(input, nil)
	if err != nil {
		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{r.cleanError(err.Error())})
		fmt.Println(tw.Render())
		return
	}

	trackTransaction(r, input)

	if res.Columns == nil {
		tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
		tw.AppendRow(table.Row{"OK", res.RowsAffected, res.LastInsertID})
	}

	if res.Columns != nil {
		header := table.Row{}
		for _, col := range res.Columns {
			header = append(header, col)
		}
		tw.AppendHeader(header)

		for _, row := range res.Rows {
			value := table.Row{}
			for _, col := range row {
				value = append(value, renderValue(col))
			}
			tw.AppendRow(value)
		}
	}

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("Took %s\n\n", res.Time)
}

// trackTransaction keeps the prompt in sync with BEGIN/COMMIT/ROLLBACK
// statements the user types.
func trackTransaction(r *Repl, input string) {
	head := strings.ToUpper(strings.TrimSpace(input))

	if strings.HasPrefix(head, "BEGIN") {
		r.setInTx(true)
	}
	if strings.HasPrefix(head, "COMMIT") || strings.HasPrefix(head, "ROLLBACK") || strings.HasPrefix(head, "END") {
		r.setInTx(false)
	}
}

// renderValue formats a single column value for display.
func renderValue(value any) any {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return fmt.Sprintf("x'%X'", v)
	default:
		return v
	}
}
