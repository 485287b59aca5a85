package card

import (
	"strings"
)

// WUBRG is the canonical cyclic order of the five colors.
const WUBRG = "wubrg"

// ColorNames maps English color words to their single-letter codes.
var ColorNames = map[string]string{
	"white": "w",
	"blue":  "u",
	"black": "b",
	"red":   "r",
	"green": "g",
}

// ColorWords lists the color words in WUBRG order.
var ColorWords = []string{"white", "blue", "black", "red", "green"}

// ColorCode returns the letter code for a color word and whether it is one.
func ColorCode(word string) (string, bool) {
	c, ok := ColorNames[strings.ToLower(word)]
	return c, ok
}

// SortColors returns the colors in canonical wrap-around WUBRG order.
//
// The result starts at the color that yields the shortest arc around the
// W→U→B→R→G cycle covering every input color; ties go to the arc that starts
// earliest in WUBRG. Unknown letters and duplicates are dropped.
func SortColors(colors []string) []string {
	present := make([]bool, len(WUBRG))
	n := 0
	for _, c := range colors {
		i := strings.Index(WUBRG, strings.ToLower(c))
		if i < 0 || len(c) != 1 || present[i] {
			continue
		}
		present[i] = true
		n++
	}
	if n == 0 {
		return []string{}
	}

	best, bestSpan := -1, len(WUBRG)
	for start := 0; start < len(WUBRG); start++ {
		if !present[start] {
			continue
		}
		span := 0
		for step := 0; step < len(WUBRG); step++ {
			if present[(start+step)%len(WUBRG)] {
				span = step
			}
		}
		if span < bestSpan {
			best, bestSpan = start, span
		}
	}

	sorted := make([]string, 0, n)
	for step := 0; step < len(WUBRG); step++ {
		i := (best + step) % len(WUBRG)
		if present[i] {
			sorted = append(sorted, string(WUBRG[i]))
		}
	}
	return sorted
}

// ColorsInText returns the colors of every mana symbol found in text.
func ColorsInText(text string) []string {
	text = strings.ToLower(text)
	var colors []string
	for _, c := range WUBRG {
		sym := string(c)
		if strings.Contains(text, "{"+sym) || strings.Contains(text, sym+"}") {
			colors = append(colors, sym)
		}
	}
	return colors
}

// ColorsProducedByLand returns the colors a land's rules text can add.
// Only the effect half of "cost: effect" lines is inspected.
func ColorsProducedByLand(rules string) []string {
	rules = strings.ToLower(rules)
	seen := map[string]bool{}
	var colors []string
	for _, line := range strings.Split(rules, "\n") {
		if parts := strings.Split(line, ":"); len(parts) == 2 {
			line = parts[1]
		}
		for _, c := range ColorsInText(line) {
			if !seen[c] {
				seen[c] = true
				colors = append(colors, c)
			}
		}
	}
	if (strings.Contains(rules, "mana of any") && strings.Contains(rules, "color")) ||
		strings.Contains(rules, "mana in any combination of colors") {
		for _, c := range WUBRG {
			if !seen[string(c)] {
				seen[string(c)] = true
				colors = append(colors, string(c))
			}
		}
	}
	return colors
}
