package lzcore

import "testing"

func TestFindLimitations_NormalizedUnbounded(t *testing.T) {
	f := FindLimitations{MinLength: 4, MaxLength: Unbounded, MinDisplacement: 1, MaxDisplacement: Unbounded}
	n := f.Normalized()

	if n.MaxLength <= 0 {
		t.Fatalf("expected MaxLength to normalize to a large positive bound, got %d", n.MaxLength)
	}
	if n.MaxDisplacement <= 0 {
		t.Fatalf("expected MaxDisplacement to normalize to a large positive bound, got %d", n.MaxDisplacement)
	}
	if !n.Allows(4, 1) {
		t.Fatal("expected minimal legal match to be allowed")
	}
	if n.Allows(3, 1) {
		t.Fatal("length below MinLength must not be allowed")
	}
}

func TestFindLimitations_Allows(t *testing.T) {
	f := FindLimitations{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096}.Normalized()

	cases := []struct {
		length, displacement int
		want                 bool
	}{
		{3, 1, true},
		{18, 4096, true},
		{2, 1, false},
		{19, 1, false},
		{3, 4097, false},
		{3, 0, false},
	}
	for _, c := range cases {
		if got := f.Allows(c.length, c.displacement); got != c.want {
			t.Errorf("Allows(%d,%d) = %v, want %v", c.length, c.displacement, got, c.want)
		}
	}
}

func TestToken_Coverage(t *testing.T) {
	lit := Token{IsMatch: false}
	if lit.Coverage() != 1 {
		t.Fatalf("literal coverage = %d, want 1", lit.Coverage())
	}

	m := Token{IsMatch: true, Match: Match{Length: 7}}
	if m.Coverage() != 7 {
		t.Fatalf("match coverage = %d, want 7", m.Coverage())
	}
}

func TestError_WrapAndKind(t *testing.T) {
	base := NewError(TruncatedInput, "need 2 more bytes")
	if base.Error() == "" {
		t.Fatal("expected non-empty error message")
	}

	wrapped := WrapError(MalformedToken, base)
	if wrapped.Unwrap() != base {
		t.Fatal("Unwrap should return the wrapped error")
	}
}
