package token

import "strings"

var (
	ones = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	tens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

	numberWords = buildNumberWords()
)

// buildNumberWords spells out zero through one hundred.
func buildNumberWords() map[string]bool {
	words := make(map[string]bool, 101)
	for n := 0; n < 100; n++ {
		switch {
		case n < 20:
			words[ones[n]] = true
		case n%10 == 0:
			words[tens[n/10]] = true
		default:
			words[tens[n/10]+"-"+ones[n%10]] = true
		}
	}
	words["one hundred"] = true
	return words
}

// isNumberWord reports whether word spells a number from zero to one hundred.
func isNumberWord(word string) bool {
	return numberWords[strings.ToLower(word)]
}

// isQuantity reports whether word (with the word after it) states how many
// tokens are created: "a", "an", "x", a number word, or "that many".
func isQuantity(word, next string) bool {
	w := strings.ToLower(word)
	if w == "a" || w == "an" || w == "x" || numberWords[w] {
		return true
	}
	return strings.ToLower(strings.TrimSpace(strings.TrimSpace(word)+" "+strings.TrimSpace(next))) == "that many"
}
