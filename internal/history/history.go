// Package history implements command history recall for the terminal input
// line: up recalls older lines, down walks back toward a fresh empty line.
package history

import "strings"

// notRecalling marks the cursor state where the user is editing a fresh line
// rather than browsing recorded history.
const notRecalling = -1

// Navigator records submitted input lines and drives arrow-key recall.
// Recall is deliberately asymmetric: Prev clamps at the oldest line, while
// Next past the newest line resets to an empty fresh line.
type Navigator struct {
	lines []string
	index int
}

// New returns an empty Navigator with the cursor on a fresh line.
func New() *Navigator {
	return &Navigator{index: notRecalling}
}

// Record appends a submitted line and resets the cursor to a fresh line.
// Blank lines are not recorded but still reset the cursor: any submit ends
// an in-progress recall.
func (n *Navigator) Record(line string) {
	n.index = notRecalling
	if strings.TrimSpace(line) == "" {
		return
	}
	n.lines = append(n.lines, line)
}

// Prev moves one step toward the oldest recorded line and returns it. The
// first call jumps to the newest line; at the oldest line repeated calls
// keep returning it. Returns false when nothing has been recorded.
func (n *Navigator) Prev() (string, bool) {
	if len(n.lines) == 0 {
		return "", false
	}
	if n.index == notRecalling {
		n.index = len(n.lines) - 1
	} else if n.index > 0 {
		n.index--
	}
	return n.lines[n.index], true
}

// Next moves one step toward the newest recorded line. Stepping past the
// newest line resets the cursor and returns the empty sentinel, telling the
// caller to clear its input field. Returns false when not currently
// recalling.
func (n *Navigator) Next() (string, bool) {
	if n.index == notRecalling {
		return "", false
	}
	n.index++
	if n.index >= len(n.lines) {
		n.index = notRecalling
		return "", true
	}
	return n.lines[n.index], true
}

// Recalling reports whether the cursor is currently on a recorded line.
func (n *Navigator) Recalling() bool {
	return n.index != notRecalling
}

// Len returns the number of recorded lines.
func (n *Navigator) Len() int {
	return len(n.lines)
}

// Lines returns a copy of the recorded lines in submission order.
func (n *Navigator) Lines() []string {
	out := make([]string, len(n.lines))
	copy(out, n.lines)
	return out
}
