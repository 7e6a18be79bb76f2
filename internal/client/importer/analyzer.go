package importer

import "strings"

// keywords holds the lower-case fragments that identify each target field in
// a header cell. A cell matches when it contains any fragment.
var keywords = map[TargetField][]string{
	FieldService:  {"service", "name", "title", "url", "website", "location"},
	FieldUsername: {"username", "user", "login", "email", "id"},
	FieldPassword: {"password", "pass", "key"},
	FieldNotes:    {"notes", "note", "comment", "desc", "description"},
}

// aliases are consulted for a field only when none of its keywords matched.
var aliases = map[TargetField][]string{
	FieldService:  {"site"},
	FieldPassword: {"secret"},
	FieldNotes:    {"memo"},
}

// Analyze suggests a FieldMapping for header.
//
// Each field takes the first column whose lower-cased name contains one of
// its keywords, or failing that one of its aliases. When none of service, username and password matched, a
// positional layout is assumed instead: service=0, username=2, password=3,
// notes=4, each only if the header is wide enough. Keyword matches and
// positional defaults are never mixed.
//
// The result is a suggestion; callers may override any field before Project.
func Analyze(header []string) FieldMapping {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(h)
	}

	m := FieldMapping{
		Service:  matchField(lower, FieldService),
		Username: matchField(lower, FieldUsername),
		Password: matchField(lower, FieldPassword),
		Notes:    matchField(lower, FieldNotes),
	}

	if m.Service == Ignored && m.Username == Ignored && m.Password == Ignored {
		applyPositional(&m, len(header))
	}

	return m
}

func matchField(cells []string, f TargetField) int {
	if i := matchColumn(cells, keywords[f]); i != Ignored {
		return i
	}
	return matchColumn(cells, aliases[f])
}

func matchColumn(cells, words []string) int {
	for i, cell := range cells {
		for _, w := range words {
			if strings.Contains(cell, w) {
				return i
			}
		}
	}
	return Ignored
}

// applyPositional overwrites only the fields whose default column exists;
// a notes match from the keyword pass survives on narrow headers.
func applyPositional(m *FieldMapping, columns int) {
	if columns >= 1 {
		m.Service = 0
	}
	if columns >= 3 {
		m.Username = 2
	}
	if columns >= 4 {
		m.Password = 3
	}
	if columns >= 5 {
		m.Notes = 4
	}
}
