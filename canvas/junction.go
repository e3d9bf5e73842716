package canvas

// CharacterMerger handles the merging of two characters at the same position
type CharacterMerger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewCharacterMerger creates a merger with the crossing rules for line glyphs.
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{
		mergeMap: make(map[mergePair]rune),
	}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters. Crossing lines become a crossing glyph,
// markers win over lines, anything else keeps the existing character.
func (m *CharacterMerger) Merge(existing, new rune) rune {
	if existing == ' ' || existing == '\x00' {
		return new
	}
	if existing == new {
		return existing
	}

	if isMarker(existing) {
		return existing
	}
	if isMarker(new) {
		return new
	}

	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}

	// Hatching and curve dots never cover a line.
	if new == '·' {
		return existing
	}
	if existing == '·' {
		return new
	}
	return existing
}

// isMarker reports whether r is a point marker such as a footprint anchor.
func isMarker(r rune) bool {
	return r == '⊕' || r == '+' || r == '×'
}

func (m *CharacterMerger) initializeMergeRules() {
	m.mergeMap[mergePair{'─', '│'}] = '┼'
	m.mergeMap[mergePair{'╲', '╱'}] = '╳'

	m.mergeMap[mergePair{'┼', '─'}] = '┼'
	m.mergeMap[mergePair{'┼', '│'}] = '┼'
	m.mergeMap[mergePair{'╳', '╲'}] = '╳'
	m.mergeMap[mergePair{'╳', '╱'}] = '╳'

	// Straight over diagonal
	m.mergeMap[mergePair{'─', '╲'}] = '┼'
	m.mergeMap[mergePair{'─', '╱'}] = '┼'
	m.mergeMap[mergePair{'│', '╲'}] = '┼'
	m.mergeMap[mergePair{'│', '╱'}] = '┼'
}
