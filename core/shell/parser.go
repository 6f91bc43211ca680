// Package shell implements word splitting for the interpreter.
//
// The splitter is deliberately naive: words are delimited by runs of
// whitespace and nothing else. There is no quoting, escaping, comment
// handling, or globbing, so a space inside what a user intends as a quoted
// string still splits the word.
package shell

import "strings"

// Delimiters are the characters that separate words.
const Delimiters = " \t\r\n\a"

// Split breaks line into words on any run of delimiter characters.
// An empty or all-delimiter line yields no words.
func Split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
}
