package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/izm4457/password-manager/internal/client/importer"
	"github.com/izm4457/password-manager/internal/client/services"
)

// ImportOptions are the flags of the import and preview commands.
type ImportOptions struct {
	Yes      bool
	Mappings []string
}

// loadTable reads path and returns the table and its mapping after
// overrides given as field=column.
func (a *App) loadTable(ctx context.Context, path string, overrides []string) (*importer.RawTable, importer.FieldMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, importer.FieldMapping{}, err
	}

	table, err := importer.Tokenize(string(data))
	if err != nil {
		return nil, importer.FieldMapping{}, err
	}

	m := importer.Analyze(table.Header)
	a.log.Debug(ctx, "columns analyzed", "file", path, "columns", table.Columns(), "rows", len(table.Rows), "mapping", m.String())

	for _, o := range overrides {
		name, col, ok := strings.Cut(o, "=")
		if !ok {
			return nil, importer.FieldMapping{}, fmt.Errorf("invalid --map %q, want field=column", o)
		}
		field, err := importer.ParseTargetField(name)
		if err != nil {
			return nil, importer.FieldMapping{}, err
		}
		idx, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return nil, importer.FieldMapping{}, fmt.Errorf("invalid --map %q: column must be a number", o)
		}
		if err := m.Set(field, idx, table.Columns()); err != nil {
			return nil, importer.FieldMapping{}, err
		}
	}
	return table, m, nil
}

// Preview prints the detected mapping and the first rows of path. It never
// touches the store.
func (a *App) Preview(ctx context.Context, path string, opts ImportOptions) error {
	table, m, err := a.loadTable(ctx, path, opts.Mappings)
	if err != nil {
		return err
	}
	printHeader(a.out, table.Header)
	printMapping(a.out, table.Header, m)
	return printPreview(a.out, importer.Preview(table, m, a.config.PreviewRows))
}

// Import runs the import of path, interactively unless opts.Yes is set.
func (a *App) Import(ctx context.Context, path string, opts ImportOptions) error {
	table, m, err := a.loadTable(ctx, path, opts.Mappings)
	if err != nil {
		return err
	}

	if opts.Yes {
		if err := m.RequirePassword(); err != nil {
			return err
		}
		return a.commit(ctx, importer.Project(table.Rows, m))
	}

	w := &wizard{table: table, mapping: m, rows: a.config.PreviewRows, out: a.out}
	printHeader(a.out, table.Header)
	if err := w.show(); err != nil {
		return err
	}
	a.println(`Type "commit" to import, "map <field> <col>" to change the mapping, "cancel" to quit.`)

	outcome, err := runWizard(ctx, a, w, a.commit)
	if err != nil {
		return err
	}
	if outcome == wizardCancelled {
		a.log.Info(ctx, "import cancelled", "file", path)
	}
	return nil
}

// commit unlocks the store and persists accepted in one write.
func (a *App) commit(ctx context.Context, accepted []importer.CandidateRecord) error {
	st, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := a.storeContext(ctx)
	defer cancel()

	res, err := services.NewImportService(st.Repo, a.log.With("store", st.Kind)).Commit(ctx, accepted)
	if err != nil {
		return err
	}
	a.printf("Successfully imported %d passwords!\n", res.ImportedCount)
	return nil
}
