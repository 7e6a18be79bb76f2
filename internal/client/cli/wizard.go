package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/izm4457/password-manager/internal/client/importer"
)

// wizardOutcome tells the caller how the wizard ended.
type wizardOutcome int

const (
	wizardCancelled wizardOutcome = iota
	wizardCommitted
)

// wizard is the mapping state a user edits before committing. Every edit
// re-runs the projection from the unchanged table.
type wizard struct {
	table   *importer.RawTable
	mapping importer.FieldMapping
	rows    int
	out     io.Writer
}

func (w *wizard) show() error {
	printMapping(w.out, w.table.Header, w.mapping)
	return printPreview(w.out, importer.Preview(w.table, w.mapping, w.rows))
}

func (w *wizard) setMapping(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: map <service|username|password|notes> <column|-1>")
	}
	field, err := importer.ParseTargetField(args[0])
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("column must be a number: %q", args[1])
	}
	return w.mapping.Set(field, idx, w.table.Columns())
}

// runWizard reads commands until the user commits or cancels. commit is
// called with the accepted candidates; when it fails the wizard keeps
// running so the user can retry or cancel. EOF counts as cancel.
//
//	map <field> <col|-1>   point a target field at a column
//	preview [k]            preview k rows (all rows for "all")
//	mapping                show the current mapping
//	columns                show the header with column numbers
//	commit                 import the accepted rows
//	cancel | exit | quit   leave without writing anything
func runWizard(ctx context.Context, a *App, w *wizard, commit func(context.Context, []importer.CandidateRecord) error) (wizardOutcome, error) {
	for {
		a.printf("import> ")
		line, err := ReadLine(a.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.println()
				return wizardCancelled, nil
			}
			return wizardCancelled, err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd, args := parts[0], parts[1:]; cmd {
		case "help":
			a.println("Available commands: map <field> <col|-1>, preview [k|all], mapping, columns, commit, cancel")

		case "map":
			if err := w.setMapping(args); err != nil {
				a.println("Error:", err)
				continue
			}
			_ = w.show()

		case "preview":
			k := w.rows
			if len(args) > 0 {
				if args[0] == "all" {
					k = -1
				} else if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
					k = n
				} else {
					a.println("Error: preview takes a non-negative number or \"all\"")
					continue
				}
			}
			_ = printPreview(a.out, importer.Preview(w.table, w.mapping, k))

		case "mapping":
			printMapping(a.out, w.table.Header, w.mapping)

		case "columns":
			printHeader(a.out, w.table.Header)

		case "commit":
			if err := w.mapping.RequirePassword(); err != nil {
				a.println("Error:", err, "- use: map password <column>")
				continue
			}
			if err := commit(ctx, importer.Project(w.table.Rows, w.mapping)); err != nil {
				a.println("Error:", err)
				continue
			}
			return wizardCommitted, nil

		case "cancel", "exit", "quit":
			a.println("Import cancelled. Nothing was written.")
			return wizardCancelled, nil

		default:
			a.println("Unknown command:", cmd)
		}
	}
}
