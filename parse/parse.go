// Package parse holds the few text helpers shared by puzzle inputs:
// signed integer extraction and splitting into lines, blocks and grids.
//
// Malformed input is not diagnosed here; callers own their input format.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every signed integer embedded in s, in order of appearance.
// A '-' counts as a sign only when directly followed by a digit, so
// "x=-3..5" yields [-3 5]. Tokens that overflow int are skipped.
func Ints(s string) []int {
	matches := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Ints64 is Ints for inputs whose values exceed 32 bits on any platform.
func Ints64(s string) []int64 {
	matches := intRx.FindAllString(s, -1)
	out := make([]int64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Lines splits text into lines, dropping a trailing newline and any '\r'.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Blocks splits text on blank lines.
func Blocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n\n")
}

// Grid returns the lines of text as byte rows. Rows are fresh copies.
func Grid(text string) [][]byte {
	lines := Lines(text)
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return rows
}
