package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/izm4457/password-manager/internal/client/config"
	"github.com/izm4457/password-manager/internal/client/importer"
	"github.com/izm4457/password-manager/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard(t *testing.T, input string) (*App, *wizard, *bytes.Buffer) {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults()
	var out bytes.Buffer
	a := NewApp(&cfg, logging.Nop(), strings.NewReader(input), &out)

	table, err := importer.Tokenize("A,B,C,D,E\ns1,x,u1,p1,n1\ns2,y,u2,,n2\n")
	require.NoError(t, err)
	return a, &wizard{table: table, mapping: importer.Analyze(table.Header), rows: 5, out: &out}, &out
}

func TestRunWizard_RemapThenCommit(t *testing.T) {
	a, w, out := newWizard(t, "mapping\ncolumns\nmap username 1\nmap notes -1\ncommit\n")

	var got []importer.CandidateRecord
	outcome, err := runWizard(context.Background(), a, w, func(_ context.Context, c []importer.CandidateRecord) error {
		got = c
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, wizardCommitted, outcome)

	want := []importer.CandidateRecord{{Service: "s1", Username: "x", Password: "p1"}}
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, out.String(), "[4] E")
}

func TestRunWizard_CommitErrorThenCancel(t *testing.T) {
	a, w, out := newWizard(t, "commit\ncancel\n")

	calls := 0
	outcome, err := runWizard(context.Background(), a, w, func(context.Context, []importer.CandidateRecord) error {
		calls++
		return errors.New("store offline")
	})
	require.NoError(t, err)
	assert.Equal(t, wizardCancelled, outcome)
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.String(), "store offline")
	assert.Contains(t, out.String(), "Nothing was written.")
}

func TestRunWizard_BadInput(t *testing.T) {
	a, w, out := newWizard(t, "map\nmap password x\nmap pin 1\npreview -2\n\nexit\n")

	outcome, err := runWizard(context.Background(), a, w, func(context.Context, []importer.CandidateRecord) error {
		t.Fatal("commit must not be called")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, wizardCancelled, outcome)

	s := out.String()
	assert.Contains(t, s, "usage: map")
	assert.Contains(t, s, "column must be a number")
	assert.Contains(t, s, "unknown target field")
	assert.Contains(t, s, "non-negative number")
	assert.Equal(t, 3, w.mapping.Password, "failed edits leave the mapping unchanged")
}

func TestPrintPreview_MasksAndMarksSkipped(t *testing.T) {
	_, w, out := newWizard(t, "")
	require.NoError(t, printPreview(out, importer.Preview(w.table, w.mapping, 1)))

	s := out.String()
	assert.Contains(t, s, passwordMask)
	assert.NotContains(t, s, "p1")
	assert.Contains(t, s, "... and 1 more rows")
	assert.Contains(t, s, "1 of 2 rows will be imported.")
}
