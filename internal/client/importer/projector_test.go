package importer

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_EndToEnd(t *testing.T) {
	text := "Site,User,Pass\nBank,alice,secret1\n,bob,secret2\nMail,carol,\n"

	tbl, err := Tokenize(text)
	require.NoError(t, err)

	m := Analyze(tbl.Header)
	require.Equal(t, FieldMapping{Service: 0, Username: 1, Password: 2, Notes: Ignored}, m)

	got := Project(tbl.Rows, m)
	want := []CandidateRecord{
		{Service: "Bank", Username: "alice", Password: "secret1"},
		{Service: "Imported", Username: "bob", Password: "secret2"},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestProject_RaggedAndIgnored(t *testing.T) {
	rows := [][]string{
		{"svc", "user", "pw", "note"},
		{"svc2", "user2", "pw2"},
		{"svc3"},
	}
	m := FieldMapping{Service: 0, Username: Ignored, Password: 2, Notes: 3}

	got := Project(rows, m)
	want := []CandidateRecord{
		{Service: "svc", Password: "pw", Notes: "note"},
		{Service: "svc2", Password: "pw2"},
	}
	assert.Equal(t, want, got)
}

func TestProject_DuplicateColumns(t *testing.T) {
	rows := [][]string{{"same", "x"}}
	m := FieldMapping{Service: 0, Username: 0, Password: 0, Notes: 0}

	got := Project(rows, m)
	require.Len(t, got, 1)
	assert.Equal(t, CandidateRecord{Service: "same", Username: "same", Password: "same", Notes: "same"}, got[0])
}

func TestProject_NoDefaultWithoutUsername(t *testing.T) {
	got := Project([][]string{{"", "", "pw"}}, FieldMapping{Service: 0, Username: 1, Password: 2, Notes: Ignored})
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Service)
}

func TestProject_PasswordIgnoredDropsEverything(t *testing.T) {
	got := Project([][]string{{"a", "b"}, {"c", "d"}}, FieldMapping{Service: 0, Username: 1, Password: Ignored, Notes: Ignored})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestProject_Laws(t *testing.T) {
	var rows [][]string
	for i := 0; i < 50; i++ {
		row := []string{}
		if i%3 != 0 {
			row = append(row, fmt.Sprintf("svc%d", i))
		} else {
			row = append(row, "")
		}
		if i%4 != 0 {
			row = append(row, fmt.Sprintf("user%d", i))
		} else {
			row = append(row, "")
		}
		if i%5 != 0 {
			row = append(row, fmt.Sprintf("pw%d", i))
		}
		rows = append(rows, row)
	}
	m := FieldMapping{Service: 0, Username: 1, Password: 2, Notes: 3}

	first := Project(rows, m)
	second := Project(rows, m)
	assert.Empty(t, cmp.Diff(first, second), "projection must be deterministic")

	for _, c := range first {
		assert.NotEmpty(t, c.Password)
		if c.Username != "" {
			assert.NotEmpty(t, c.Service)
		}
	}

	for i, row := range rows {
		if len(row) > 2 && row[0] == "" && row[1] != "" {
			got := Project(rows[i:i+1], m)
			require.Len(t, got, 1)
			assert.Equal(t, DefaultService, got[0].Service)
		}
	}
}

func TestPreview_AgreesWithProject(t *testing.T) {
	tbl := &RawTable{
		Header: []string{"site", "user", "pass"},
		Rows: [][]string{
			{"a", "u1", "p1"},
			{"b", "u2", ""},
			{"", "u3", "p3"},
			{"d", "u4", "p4"},
		},
	}
	m := Analyze(tbl.Header)

	for k := 0; k <= len(tbl.Rows); k++ {
		res := Preview(tbl, m, k)
		require.Len(t, res.Rows, k)

		var accepted []CandidateRecord
		for _, r := range res.Rows {
			if r.Accepted {
				accepted = append(accepted, r.Record)
			}
		}
		full := Project(tbl.Rows[:k], m)
		assert.Equal(t, len(full), len(accepted))
		for i := range accepted {
			assert.Equal(t, full[i], accepted[i])
		}
	}
}

func TestPreview_Counts(t *testing.T) {
	tbl := &RawTable{
		Header: []string{"site", "user", "pass"},
		Rows:   [][]string{{"a", "u", "p"}, {"b", "u", ""}, {"c", "u", "p"}},
	}

	res := Preview(tbl, Analyze(tbl.Header), 1)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, 1, res.Rows[0].Row)

	all := Preview(tbl, Analyze(tbl.Header), -1)
	assert.Len(t, all.Rows, 3)
	assert.Equal(t, 0, all.Remaining)
	assert.False(t, all.Rows[1].Accepted)
}
