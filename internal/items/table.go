package items

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Table maps canonical item ids to a restore amount.
type Table struct {
	values map[string]float32
	folded map[string]string
	ids    []string
}

func NewTable(values map[string]float32) *Table {
	t := &Table{
		values: make(map[string]float32, len(values)),
		folded: make(map[string]string, len(values)),
	}
	for id, v := range values {
		t.values[id] = v
		t.folded[foldID(id)] = id
		t.ids = append(t.ids, id)
	}
	sort.Strings(t.ids)
	return t
}

// Value returns the restore amount for id, or 0 when the item is unknown.
func (t *Table) Value(id string) float32 {
	if t == nil {
		return 0
	}
	return t.values[id]
}

func (t *Table) Has(id string) bool {
	if t == nil {
		return false
	}
	_, ok := t.values[id]
	return ok
}

func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.ids...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// Suggest returns the closest known id for a misspelt or differently cased
// one. Exact ids are returned unchanged.
func (t *Table) Suggest(id string) (string, bool) {
	if t == nil || id == "" {
		return "", false
	}
	if t.Has(id) {
		return id, true
	}
	key := foldID(id)
	if canonical, ok := t.folded[key]; ok {
		return canonical, true
	}
	if len(key) < 3 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, candidate := range t.ids {
		dist := levenshtein.ComputeDistance(key, foldID(candidate))
		if dist > suggestLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
