package services

import "strings"

// NotesLineChars is how many characters fit on one wrapped notes line at
// the composer's notes font size across the printable page width.
const NotesLineChars = 95

// NoteLineHeight is the row height given to each wrapped notes line, in the
// composer's grid units. Content after the notes block shifts down by this
// amount per line.
const NoteLineHeight = 5.0

// WrapText breaks text into lines of at most width characters using greedy
// line breaking: a word that fits on the current line is never split. A
// single word longer than the width gets a line of its own rather than
// being broken mid-word. Explicit newlines in the input force breaks.
func WrapText(text string, width int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// NotesHeight is the vertical space the wrapped notes text occupies: the
// wrapped line count times the line height. Empty notes occupy nothing.
func NotesHeight(notes string) float64 {
	return float64(len(WrapText(notes, NotesLineChars))) * NoteLineHeight
}
