package items

import "testing"

func TestNormalizeIDTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "*Waterskin:Filled_Water", want: "Waterskin"},
		{in: "Apple", want: "Apple"},
		{in: "Waterskin:Empty", want: "Waterskin"},
		{in: "*Water_Bowl", want: "Water_Bowl"},
		{in: "**Odd", want: "*Odd"},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		got := NormalizeID(tc.in)
		if got != tc.want {
			t.Fatalf("NormalizeID(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestTableValueMissingIsZero(t *testing.T) {
	table := NewTable(map[string]float32{"Waterskin": 25})
	if got := table.Value("Waterskin"); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := table.Value("Bucket"); got != 0 {
		t.Fatalf("expected 0 for unknown item, got %v", got)
	}
	var empty *Table
	if got := empty.Value("Waterskin"); got != 0 {
		t.Fatalf("nil table should return 0, got %v", got)
	}
}

func TestSuggestFindsCaseAndTypoVariants(t *testing.T) {
	table := NewTable(map[string]float32{
		"Food_Bread":        20,
		"Food_Fish_Grilled": 20,
		"Waterskin":         25,
	})
	tests := []struct {
		in   string
		want string
	}{
		{in: "food_bread", want: "Food_Bread"},
		{in: "Food-Bread", want: "Food_Bread"},
		{in: "Watreskin", want: "Waterskin"},
		{in: "*Waterskin:Filled_Water", want: "Waterskin"},
		{in: "Food_Fish_Griled", want: "Food_Fish_Grilled"},
	}
	for _, tc := range tests {
		got, ok := table.Suggest(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("Suggest(%q)=%q,%v want=%q", tc.in, got, ok, tc.want)
		}
	}
	if got, ok := table.Suggest("Pickaxe_Iron"); ok {
		t.Fatalf("did not expect a suggestion, got %q", got)
	}
}

func TestWithIncreasedDurabilityCapsAtMax(t *testing.T) {
	s := Stack{ItemID: "Waterskin", Quantity: 1, Durability: 3, MaxDurability: 10}
	full := s.WithIncreasedDurability(s.MaxDurability)
	if full.Durability != 10 || !full.IsFull() {
		t.Fatalf("expected full stack, got %+v", full)
	}
	if s.Durability != 3 {
		t.Fatalf("original stack should be unchanged")
	}
}

func TestSlotContainerRejectsOutOfRange(t *testing.T) {
	c := NewSlotContainer(2)
	if tx := c.SetStackForSlot(5, Stack{ItemID: "Apple"}); tx.Succeeded {
		t.Fatalf("expected failed transaction")
	}
	if err := c.Put(1, Stack{ItemID: "Apple", Quantity: 3}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Stack(1)
	if !ok || got.Quantity != 3 {
		t.Fatalf("expected stored stack, got %+v ok=%v", got, ok)
	}
}
