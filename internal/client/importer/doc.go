// Package importer turns a comma-separated export from another password
// manager or spreadsheet into candidate credential records.
//
// # Pipeline
//
//  1. Tokenize splits raw text into a header and ragged data rows.
//  2. Analyze guesses which column feeds each target field
//     (service, username, password, notes).
//  3. Project applies a (possibly user-edited) FieldMapping to the rows,
//     defaults the service name and drops rows without a password.
//
// Every function in this package is pure: the same inputs always produce the
// same outputs and nothing is cached between calls. A UI can call Project
// after every mapping edit, and Preview on a prefix of the rows agrees with
// the full projection on that prefix.
//
// Persisting the accepted candidates is the job of services.ImportService.
package importer
