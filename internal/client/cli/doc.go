// Package cli implements the pwimport command line.
//
// Commands:
//
//	pwimport init                  create an empty store
//	pwimport import FILE           detect columns, review, then commit
//	pwimport preview FILE          show the detected mapping and a preview
//	pwimport list                  list stored services and usernames
//
// Without --yes, import runs an interactive wizard (see runWizard) where the
// detected mapping can be changed before anything is written. Passwords are
// never printed.
package cli
