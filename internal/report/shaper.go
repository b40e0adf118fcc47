package report

import "strings"

// TextShaper prepares display text for the renderer's left-to-right text
// drawing primitive. The renderer never reorders text itself; swapping the
// shaper is enough to change how right-to-left content is approximated.
type TextShaper interface {
	Shape(text string) string
}

// PassThrough returns text unchanged. Used for Latin layouts.
type PassThrough struct{}

func (PassThrough) Shape(text string) string { return text }

// WordReverser approximates right-to-left rendering for Hebrew content by
// reversing the word order and joining with double spaces, so that a
// left-to-right drawing primitive places the words in visual RTL order.
// A single word passes through untouched.
type WordReverser struct{}

func (WordReverser) Shape(text string) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, "  ")
}
