package settlement

// MaxLevel is terminal: experience keeps accruing but no further level-up
// happens past it.
const MaxLevel = 10

// XPForLevel returns the experience required to leave the given level. The
// second value is false at or above MaxLevel.
func XPForLevel(level int) (int, bool) {
	if level < 0 || level >= MaxLevel {
		return 0, false
	}
	return 100 * (level + 1), true
}

// ApplyXP adds gained experience and resolves any level-ups against the
// threshold table.
func ApplyXP(xp, level, gained int) (newXP, newLevel int) {
	xp += gained
	for {
		required, ok := XPForLevel(level)
		if !ok || xp < required {
			break
		}
		xp -= required
		level++
	}
	return xp, level
}
