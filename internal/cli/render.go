package cli

import (
	"fmt"
	"io"

	"ledger/internal/commands"
	"ledger/internal/core"
)

const menu = `
     add <value> <type> <description>
     insert <day> <value> <type> <description>
     remove <day>
     remove <start day> to <end day>
     remove <type>
     replace <day> <type> <description> with <value>
     list
     list <type>
     list [ < | = | > ] <value>
     list balance <day>
     filter <type>
     filter <type> <value>
     undo
     exit
`

// PrintMenu writes the command summary.
func PrintMenu(w io.Writer) {
	fmt.Fprint(w, menu+"\n")
}

// PrintTransactions writes one line per transaction.
func PrintTransactions(w io.Writer, items core.Collection) {
	for _, t := range items {
		fmt.Fprintln(w, t.String())
	}
}

// PrintResult writes what a query produced. Mutations print nothing.
func PrintResult(w io.Writer, res commands.Result) {
	if res.HasBalance {
		fmt.Fprintln(w, res.Balance)
		return
	}
	PrintTransactions(w, res.Transactions)
}
