package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer converts learner input to an integer.
// Whitespace is trimmed; anything that is not a base-10 integer is rejected.
func ParseAnswer(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return v, true
}
