// Package cli implements the notekeeper command line: a cobra command tree
// over the Data Store Manager plus an interactive shell that keeps one
// session open across commands.
//
// Every command that touches notes logs in first. The password comes from
// --password, then the NOTEKEEPER_PASSWORD environment variable, then a
// no-echo terminal prompt.
package cli
