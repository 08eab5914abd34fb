package numerals

import (
	"errors"
	"testing"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"12345678", "1,23,45,678"},
		{"123456789", "12,34,56,789"},
		{"1234567890", "1,23,45,67,890"},
		{"-1234567", "-12,34,567"},
		{"१२३४५६७", "१२,३४,५६७"},
		{"१२३४५६७८", "१,२३,४५,६७८"},
		{"१२३४", "१,२३४"},
	}
	for _, c := range cases {
		got, err := Group(c.in)
		if err != nil {
			t.Fatalf("Group(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Group(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGroupRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "-", "12a4", "१२3", "1 234", "1,234"} {
		if _, err := Group(in); !errors.Is(err, ErrNotANumber) {
			t.Errorf("Group(%q) error = %v, want ErrNotANumber", in, err)
		}
	}
}
