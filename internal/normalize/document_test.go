package normalize

import "testing"

func TestGet(t *testing.T) {
	doc := Document{
		"team": map[string]any{
			"venue": map[string]any{"name": "Kyle Field"},
		},
		"count": 3.0,
	}

	t.Run("walks nested path", func(t *testing.T) {
		got := Get(doc, "team", "venue", "name")
		if got != "Kyle Field" {
			t.Fatalf("unexpected value: got=%v want=Kyle Field", got)
		}
	})

	t.Run("absent key returns nil", func(t *testing.T) {
		if got := Get(doc, "team", "venue", "zip"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("non-mapping midpoint returns nil", func(t *testing.T) {
		if got := Get(doc, "count", "anything"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("nil document returns nil", func(t *testing.T) {
		if got := Get(nil, "a", "b"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("fallback on absent path", func(t *testing.T) {
		got := GetOr(doc, "USA", "team", "country")
		if got != "USA" {
			t.Fatalf("unexpected fallback: got=%v want=USA", got)
		}
	})
}

func TestString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *string
	}{
		{"trims whitespace", "  SEC  ", strPtr("SEC")},
		{"empty after trim is nil", "   ", nil},
		{"nil is nil", nil, nil},
		{"number formats", 42.0, strPtr("42")},
		{"mapping is nil", map[string]any{"a": 1}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := String(tc.in)
			if !eqStrPtr(got, tc.want) {
				t.Fatalf("unexpected result: got=%v want=%v", fmtPtr(got), fmtPtr(tc.want))
			}
		})
	}
}

func TestInt(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *int
	}{
		{"json number", 75.0, intPtr(75)},
		{"digit string", "75", intPtr(75)},
		{"non-numeric string", "abc", nil},
		{"decimal string", "75.5", nil},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Int(tc.in)
			if !eqIntPtr(got, tc.want) {
				t.Fatalf("unexpected result: got=%v want=%v", fmtIntPtr(got), fmtIntPtr(tc.want))
			}
		})
	}
}

func TestToken(t *testing.T) {
	valid := "4b7c1f3a-8f27-4e5d-9b6a-2c1d0e9f8a7b"

	if got := Token(valid); got == nil || *got != valid {
		t.Fatalf("valid token rejected: %v", fmtPtr(got))
	}
	if got := Token("not-a-uuid"); got != nil {
		t.Fatalf("invalid token accepted: %v", *got)
	}
	if got := Token(12345.0); got != nil {
		t.Fatalf("numeric value accepted as token: %v", *got)
	}
}

func TestHeightInches(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *int
	}{
		{"digit string is inches", "75", intPtr(75)},
		{"feet dash inches", "6-3", intPtr(75)},
		{"feet quote inches", `6'3"`, intPtr(75)},
		{"plain int passes through", 190, intPtr(190)},
		{"json number passes through", 190.0, intPtr(190)},
		{"unparseable is nil", "tall", nil},
		{"half dash is nil", "6-", nil},
		{"nil is nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HeightInches(tc.in)
			if !eqIntPtr(got, tc.want) {
				t.Fatalf("unexpected result: got=%v want=%v", fmtIntPtr(got), fmtIntPtr(tc.want))
			}
		})
	}
}

func TestPersonName(t *testing.T) {
	t.Run("plain string splits on last token", func(t *testing.T) {
		first, last := PersonName("Bo Jackson")
		if deref(first) != "Bo" || deref(last) != "Jackson" {
			t.Fatalf("unexpected split: first=%v last=%v", fmtPtr(first), fmtPtr(last))
		}
	})

	t.Run("multi-token first name", func(t *testing.T) {
		first, last := PersonName("John David Booty")
		if deref(first) != "John David" || deref(last) != "Booty" {
			t.Fatalf("unexpected split: first=%v last=%v", fmtPtr(first), fmtPtr(last))
		}
	})

	t.Run("single token is last name only", func(t *testing.T) {
		first, last := PersonName("Madden")
		if first != nil || deref(last) != "Madden" {
			t.Fatalf("unexpected split: first=%v last=%v", fmtPtr(first), fmtPtr(last))
		}
	})

	t.Run("structured object", func(t *testing.T) {
		first, last := PersonName(map[string]any{"first": "Bo", "last": "Jackson"})
		if deref(first) != "Bo" || deref(last) != "Jackson" {
			t.Fatalf("unexpected result: first=%v last=%v", fmtPtr(first), fmtPtr(last))
		}
	})

	t.Run("nil input", func(t *testing.T) {
		first, last := PersonName(nil)
		if first != nil || last != nil {
			t.Fatalf("expected nils, got first=%v last=%v", fmtPtr(first), fmtPtr(last))
		}
	})
}

func TestPositionName(t *testing.T) {
	if got := PositionName("QB"); deref(got) != "QB" {
		t.Fatalf("bare code: got=%v", fmtPtr(got))
	}
	if got := PositionName(map[string]any{"name": "Quarterback", "abbr": "QB"}); deref(got) != "Quarterback" {
		t.Fatalf("descriptive name preferred: got=%v", fmtPtr(got))
	}
	if got := PositionName(map[string]any{"abbr": "QB"}); deref(got) != "QB" {
		t.Fatalf("abbreviation fallback: got=%v", fmtPtr(got))
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func fmtIntPtr(n *int) any {
	if n == nil {
		return "<nil>"
	}
	return *n
}
