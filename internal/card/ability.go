package card

import "strings"

// Ability is a keyword ability together with its reminder text.
type Ability struct {
	Name        string
	Reminder    string // reminder text written about "this creature"
	Description string // general description
}

// Abilities is the keyword table used to expand bare keywords on tokens.
var Abilities = []Ability{
	{
		Name:        "Decayed",
		Reminder:    "This creature can't block. When it attacks, sacrifice it at end of combat.",
		Description: "A creature with decayed can't block. When it attacks, sacrifice it at end of combat.",
	},
	{
		Name:        "Protection from everything",
		Reminder:    "This creature can't be blocked, targeted, dealt damage, enchanted, or equipped by anything.",
		Description: "A creature with protection from everything can't be blocked, targeted, dealt damage, enchanted, or equipped by anything.",
	},
	{
		Name:        "Shadow",
		Reminder:    "This creature can block or be blocked by only creatures with shadow.",
		Description: "A creature with shadow can block or be blocked by only creatures with shadow.",
	},
	{
		Name:        "Anarky",
		Reminder:    "This creature attacks a randomly selected opponent each combat if able.",
		Description: "A creature with anarky attacks a randomly selected opponent each combat if able.",
	},
}

// AbilityKey normalizes an ability name for lookups: case, spaces and
// periods are ignored.
func AbilityKey(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, ".", "")
}

// AbilityTable indexes abilities by AbilityKey.
func AbilityTable(abilities []Ability) map[string]Ability {
	table := make(map[string]Ability, len(abilities))
	for _, ab := range abilities {
		table[AbilityKey(ab.Name)] = ab
	}
	return table
}
