package editor

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
)

// Change is one line of a line-level diff.
type Change struct {
	Kind ChangeKind
	Text string
}

// Changes diffs before and after line by line.
func Changes(before, after string) []Change {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out []Change
	for _, d := range diffs {
		kind := Unchanged
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = Added
		case diffmatchpatch.DiffDelete:
			kind = Removed
		}
		for _, line := range splitLines(d.Text) {
			out = append(out, Change{Kind: kind, Text: line})
		}
	}
	return out
}

// CountChanges returns the number of added and removed lines.
func CountChanges(changes []Change) (added, removed int) {
	for _, ch := range changes {
		switch ch.Kind {
		case Added:
			added++
		case Removed:
			removed++
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
