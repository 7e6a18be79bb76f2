package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/izm4457/password-manager/internal/client/importer"
)

const passwordMask = "••••••"

func printHeader(w io.Writer, header []string) {
	fmt.Fprintln(w, "Columns:")
	for i, h := range header {
		fmt.Fprintf(w, "  [%d] %s\n", i, h)
	}
}

func printMapping(w io.Writer, header []string, m importer.FieldMapping) {
	fmt.Fprintln(w, "Mapping:")
	for _, f := range importer.TargetFields {
		idx := m.Get(f)
		if idx == importer.Ignored {
			fmt.Fprintf(w, "  %-9s -> (ignored)\n", f)
			continue
		}
		fmt.Fprintf(w, "  %-9s -> [%d] %s\n", f, idx, header[idx])
	}
}

func mask(password string) string {
	if password == "" {
		return ""
	}
	return passwordMask
}

func printPreview(w io.Writer, p importer.PreviewResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tSERVICE\tUSERNAME\tPASSWORD\tNOTES\t")
	for _, r := range p.Rows {
		status := ""
		if !r.Accepted {
			status = "skipped: no password"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Row, r.Record.Service, r.Record.Username, mask(r.Record.Password), oneLine(r.Record.Notes), status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if p.Remaining > 0 {
		fmt.Fprintf(w, "... and %d more rows\n", p.Remaining)
	}
	fmt.Fprintf(w, "%d of %d rows will be imported.\n", p.Accepted, p.Total)
	return nil
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	if len([]rune(s)) > 40 {
		return string([]rune(s)[:37]) + "..."
	}
	return s
}
