package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// List prints the service and username of every stored record.
func (a *App) List(ctx context.Context) error {
	st, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := a.storeContext(ctx)
	defer cancel()

	records, err := st.Repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		a.println("No passwords stored.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSERVICE\tUSERNAME")
	for i, r := range records {
		o := r.Overview()
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, o.Service, o.Username)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.printf("%d passwords stored.\n", len(records))
	return nil
}
