package importer

// DefaultService replaces an empty service name when the row has a username.
const DefaultService = "Imported"

// CandidateRecord is a credential projected from one data row. It has no
// identifier; one is assigned when the record is committed.
type CandidateRecord struct {
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// Project maps every row through m and keeps the rows that have a password.
//
// Indices past the end of a row read as empty strings. When service is empty
// and username is not, service becomes DefaultService. Project never fails
// and keeps no state: identical (rows, m) pairs give identical results.
func Project(rows [][]string, m FieldMapping) []CandidateRecord {
	out := make([]CandidateRecord, 0, len(rows))
	for _, row := range rows {
		c := projectRow(row, m)
		if c.Password == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func projectRow(row []string, m FieldMapping) CandidateRecord {
	c := CandidateRecord{
		Service:  cell(row, m.Service),
		Username: cell(row, m.Username),
		Password: cell(row, m.Password),
		Notes:    cell(row, m.Notes),
	}
	if c.Service == "" && c.Username != "" {
		c.Service = DefaultService
	}
	return c
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
