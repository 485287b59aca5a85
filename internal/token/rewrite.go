package token

import (
	"regexp"
	"strings"
)

// Rewrite is a templated exception to the general heuristics. When Match
// accepts a freshly extracted spec, Apply rewrites it using the clause text.
type Rewrite struct {
	Name  string
	Match func(s *Spec) bool
	Apply func(s *Spec, clause string)
}

// DefaultRewrites is the rule table applied after field extraction.
var DefaultRewrites = []Rewrite{RoleRewrite}

var (
	parentheticalRe = regexp.MustCompile(`\((.*?)\)`)
	replaceRoleRe   = regexp.MustCompile(`(?i)` + regexp.QuoteMeta("If you control another Role on it, put that one into the graveyard."))
	thatRoleRe      = regexp.MustCompile(`(?i)that Role`)
)

// RoleRewrite turns "<Name> Role" tokens into Aura enchantment tokens whose
// rules come from the reminder text printed with them.
var RoleRewrite = Rewrite{
	Name: "role",
	Match: func(s *Spec) bool {
		return containsWord(strings.Fields(s.Subtype), "Role")
	},
	Apply: func(s *Spec, clause string) {
		s.Subtype = "Aura Role"
		s.CardType = "Token Enchantment"
		s.Name = strings.TrimSpace(strings.ReplaceAll(s.Name, "Role", ""))
		s.Rules = ""
		m := parentheticalRe.FindStringSubmatch(clause)
		if m == nil {
			return
		}
		rules := strings.TrimSpace(replaceRoleRe.ReplaceAllString(m[1], ""))
		rules = strings.TrimSpace(thatRoleRe.ReplaceAllString(rules, "this Role"))
		s.Rules = "Enchant creature\n" + rules
	},
}
