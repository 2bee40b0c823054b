package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"cpu", "7"},
		{"disk", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{"cpu    7", "disk  12"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"long"}}, nil)
	if got[0] != "a     b" {
		t.Fatalf("expected padded first row, got %q", got[0])
	}
	if got[1] != "long" {
		t.Fatalf("expected trailing cell without padding, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
