package items

import "strings"

// NormalizeID strips the state-variant marker and the state suffix from a
// raw item id: "*Waterskin:Filled_Water" becomes "Waterskin".
func NormalizeID(raw string) string {
	id := strings.TrimPrefix(raw, "*")
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[:i]
	}
	return id
}

// foldID is the comparison key used for suggestions.
func foldID(id string) string {
	id = strings.ToLower(strings.TrimSpace(NormalizeID(id)))
	return strings.NewReplacer("-", "_", " ", "_").Replace(id)
}
