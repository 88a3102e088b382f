// repl (read eval print loop) adapts db to the command line.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/olekukonko/tablewriter"

	"github.com/mfrye/memlite/compiler"
	"github.com/mfrye/memlite/db"
	"github.com/mfrye/memlite/engine"
)

const prompt = "memlite> "

type repl struct {
	db  *db.DB
	rl  *readline.Instance
	out io.Writer
}

func New(d *db.DB) (*repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &repl{
		db:  d,
		rl:  rl,
		out: rl.Stdout(),
	}, nil
}

func (r *repl) Run() {
	defer r.rl.Close()
	fmt.Fprintln(r.out, "Welcome to memlite. Type .exit to exit")
	fmt.Fprintln(r.out, "WARN database is in memory and will not persist changes")
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		}
		if err == io.EOF {
			return
		}
		if strings.TrimSpace(line) == ".exit" {
			return
		}
		result, err := r.db.Execute(line)
		if err != nil {
			fmt.Fprintf(r.out, "Err: %s\n", err)
			continue
		}
		fmt.Fprint(r.out, formatResult(result))
	}
}

// formatResult renders one execution outcome for the terminal.
func formatResult(result *engine.Result) string {
	switch result.Kind {
	case engine.Empty:
		return ""
	case engine.TableCreated:
		if result.Created {
			return "ok\n"
		}
		return "ok (table already exists)\n"
	case engine.RowInserted:
		return "ok\n"
	case engine.RowsSelected:
		return formatRows(result.Columns, result.Rows)
	}
	return ""
}

func formatRows(columns []string, rows [][]compiler.Literal) string {
	sb := &strings.Builder{}
	table := tablewriter.NewWriter(sb)
	table.SetHeader(columns)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, l := range row {
			cells[i] = compiler.Render(l)
		}
		table.Append(cells)
	}
	table.Render()
	fmt.Fprintf(sb, "(%d rows)\n", len(rows))
	return sb.String()
}

func historyPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return dir + "/.memlite_history"
}
