package crypto

import "strings"

// commonSequences are keyboard and counting runs that make a password look
// guessable regardless of how it was drawn.
var commonSequences = []string{"123", "321", "abc", "cba", "qwe", "asd", "zxc"}

// HasPredictablePattern reports whether the password contains a predictable
// pattern: three characters with consecutive ascending codes, the same
// character three or more times in a row, or a known common sequence
// (case-insensitive). It is a heuristic filter, not a strength guarantee.
func HasPredictablePattern(password string) bool {
	for i := 0; i+2 < len(password); i++ {
		if password[i+1] == password[i]+1 && password[i+2] == password[i]+2 {
			return true
		}
		if password[i+1] == password[i] && password[i+2] == password[i] {
			return true
		}
	}

	lower := strings.ToLower(password)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}

	return false
}
