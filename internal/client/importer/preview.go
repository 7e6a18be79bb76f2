package importer

// PreviewRow is one data row as it would be imported, before the password
// filter. Accepted is false for rows that Project would drop.
type PreviewRow struct {
	Row      int // 1-based position among the data rows
	Record   CandidateRecord
	Accepted bool
}

// PreviewResult is a bounded view of a projection.
type PreviewResult struct {
	Rows      []PreviewRow
	Total     int
	Accepted  int
	Remaining int
}

// Preview projects the first k rows of t under m and counts how many of all
// rows would be accepted. A negative k previews every row.
//
// Accepted rows of the preview equal the prefix of Project(t.Rows, m).
func Preview(t *RawTable, m FieldMapping, k int) PreviewResult {
	if k < 0 || k > len(t.Rows) {
		k = len(t.Rows)
	}

	res := PreviewResult{
		Rows:      make([]PreviewRow, 0, k),
		Total:     len(t.Rows),
		Remaining: len(t.Rows) - k,
	}

	for i, row := range t.Rows {
		c := projectRow(row, m)
		ok := c.Password != ""
		if ok {
			res.Accepted++
		}
		if i < k {
			res.Rows = append(res.Rows, PreviewRow{Row: i + 1, Record: c, Accepted: ok})
		}
	}

	return res
}
