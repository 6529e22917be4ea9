package store

import "strings"

// isIDToken reports whether a word carries the "@" marker.
func isIDToken(word string) bool {
	return strings.HasPrefix(word, "@")
}

// singleID extracts the one "@id" token from args and returns it without
// the marker, together with the remaining words in their original order.
func singleID(args []string) (string, []string, error) {
	var id string
	found := false
	words := make([]string, 0, len(args))
	for _, word := range args {
		if !isIDToken(word) {
			words = append(words, word)
			continue
		}
		if found {
			return "", nil, ErrAmbiguousID
		}
		found = true
		id = strings.TrimPrefix(word, "@")
	}
	if !found {
		return "", nil, ErrMissingID
	}
	return id, words, nil
}

// splitBoards separates "@board" tokens from the description words.
func splitBoards(args []string) (boards []string, words []string) {
	for _, word := range args {
		if isIDToken(word) {
			boards = append(boards, word)
		} else {
			words = append(words, word)
		}
	}
	return boards, words
}
