package card

import (
	"fmt"
	"strings"
)

// Facts is the transient description of a card needed to pick its frame.
type Facts struct {
	TypeLine string // supertypes and card types, e.g. "Legendary Token Artifact Land"
	Subtype  string
	Colors   []string
	Rules    string
	Special  string // front, back, transform-front, transform-back, mdfc-front, mdfc-back
}

var (
	tokenFrames   = []string{"creature", "noncreature", "artifact-creature", "artifact-noncreature"}
	doubleFrames  = []string{"creature", "noncreature", "artifact-creature", "artifact-noncreature", "land"}
	defaultFrames = []string{
		"creature", "noncreature", "artifact-creature", "artifact-noncreature", "land",
		"enchantment-artifact-creature", "enchantment-artifact-noncreature", "enchantment-creature", "enchantment-land",
	}
)

// ClassifyFrame returns the frame class for a card, for example
// "g_token_creature" or "rw_artifact-noncreature_legendary".
// It is pure: the result only depends on f.
func ClassifyFrame(f Facts) (string, error) {
	tl := ParseTypeLine(f.TypeLine)
	subtype := strings.ToLower(f.Subtype)
	isSaga := tl.Has("enchantment") && strings.Contains(subtype, "saga")
	isVehicle := tl.Has("artifact") && strings.Contains(subtype, "vehicle")

	var b strings.Builder
	b.WriteString(colorCode(tl, f))
	b.WriteString("_")

	special := strings.ToLower(f.Special)
	available := defaultFrames
	switch {
	case special == "front" || special == "back" || strings.HasPrefix(special, "transform"):
		b.WriteString("transform")
		b.WriteString(faceSuffix(special))
		b.WriteString("_")
		available = doubleFrames
	case strings.Contains(special, "mdfc"):
		b.WriteString("mdfc")
		b.WriteString(faceSuffix(special))
		b.WriteString("_")
		available = doubleFrames
	case tl.Has("token"):
		b.WriteString("token_")
		available = tokenFrames
	}

	switch {
	case isSaga:
		b.WriteString("saga")
	case isVehicle:
		b.WriteString("artifact-vehicle")
	case tl.Has("planeswalker"):
		return "", fmt.Errorf("planeswalker frames are not supported")
	case tl.Has("battle"):
		return "", fmt.Errorf("battle frames are not supported")
	default:
		body := frameBody(tl, available)
		if !contains(available, body) {
			return "", fmt.Errorf("no %s frame available for %q", body, f.TypeLine)
		}
		b.WriteString(body)
	}

	if tl.Has("legendary") && !isSaga {
		b.WriteString("_legendary")
	}
	return b.String(), nil
}

func colorCode(tl TypeLine, f Facts) string {
	colors := SortColors(f.Colors)
	if len(colors) == 0 {
		switch {
		case tl.Has("land"):
			colors = SortColors(ColorsProducedByLand(f.Rules))
		case !tl.Has("artifact"):
			colors = SortColors(ColorsInText(f.Rules))
		}
	}
	switch len(colors) {
	case 0:
		return "c"
	case 1, 2:
		return strings.Join(colors, "")
	default:
		return "m"
	}
}

func faceSuffix(special string) string {
	switch {
	case strings.Contains(special, "front"):
		return "-front"
	case strings.Contains(special, "back"):
		return "-back"
	}
	return ""
}

func frameBody(tl TypeLine, available []string) string {
	hasPrefix := func(prefix string) bool {
		for _, f := range available {
			if strings.HasPrefix(f, prefix) {
				return true
			}
		}
		return false
	}

	switch {
	case tl.Has("enchantment") && hasPrefix("enchantment"):
		switch {
		case tl.Has("artifact") && tl.Has("creature"):
			return "enchantment-artifact-creature"
		case tl.Has("artifact"):
			return "enchantment-artifact-noncreature"
		case tl.Has("land"):
			return "enchantment-land"
		case tl.Has("creature"):
			return "enchantment-creature"
		}
		return "noncreature"
	case tl.Has("artifact") && hasPrefix("artifact"):
		switch {
		case tl.Has("creature"):
			return "artifact-creature"
		case tl.Has("land") && contains(available, "artifact-land"):
			return "artifact-land"
		}
		return "artifact-noncreature"
	case tl.Has("land") && contains(available, "land"):
		return "land"
	case tl.Has("creature"):
		return "creature"
	}
	return "noncreature"
}
