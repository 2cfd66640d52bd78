package catalog

import "github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"

// IsEligible reports whether a character may take the target feat.
//
// A character qualifies when the feat's minimum level (if any) does not
// exceed the character level, the named ability score (if any) meets the
// minimum, and every required feat is already possessed. An absent
// prerequisite field imposes no constraint, so a feat without
// prerequisites is always eligible. The predicate is pure and never errors.
func IsEligible(characterFeats map[string]bool, characterLevel int, abilityScores map[string]int, target domain.Feat) bool {
	prereq := target.Prerequisites
	if prereq == nil {
		return true
	}

	if prereq.Level > 0 && characterLevel < prereq.Level {
		return false
	}
	if prereq.Ability != "" && prereq.Score > 0 {
		if abilityScores[prereq.Ability] < prereq.Score {
			return false
		}
	}
	for _, required := range prereq.Feats {
		if !characterFeats[required] {
			return false
		}
	}
	return true
}
