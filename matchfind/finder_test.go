package matchfind

import (
	"testing"

	"github.com/retrocodec/lzcore"
)

func lz10Limits() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{
		{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096},
	}
}

func TestCandidates_FindsRepeatedPattern(t *testing.T) {
	data := []byte("ABABABABAB")
	f := New(data, lz10Limits(), lzcore.FindOptions{UnitSize: lzcore.Unit1})

	// Scan left to right; at position 2 ("AB" repeats from position 0).
	for pos := range 2 {
		_ = f.Candidates(pos)
	}
	cands := f.Candidates(2)

	found := false
	for _, m := range cands {
		if m.Displacement == 2 && m.Length >= 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a displacement-2 match at position 2, got %+v", cands)
	}
}

func TestCandidates_RespectsMaxDisplacement(t *testing.T) {
	data := append([]byte("XYZ"), make([]byte, 5000)...)
	data = append(data, []byte("XYZ")...)
	limits := []lzcore.FindLimitations{{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096}}
	f := New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})

	for pos := range len(data) - 3 {
		f.Candidates(pos)
	}
	cands := f.Candidates(len(data) - 3)
	for _, m := range cands {
		if m.Displacement > 4096 {
			t.Fatalf("candidate displacement %d exceeds max 4096", m.Displacement)
		}
	}
}

func TestCandidates_PreBufferMatch(t *testing.T) {
	preBuf := make([]byte, 10)
	data := make([]byte, 10) // all-zero, matches pre-buffer entirely
	limits := []lzcore.FindLimitations{{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 20}}

	f := New(data, limits, lzcore.FindOptions{
		UnitSize:          lzcore.Unit1,
		PreBufferSize:     len(preBuf),
		PreBufferContents: preBuf,
	})

	cands := f.Candidates(0)
	found := false
	for _, m := range cands {
		if m.Displacement == 10 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a pre-buffer match with displacement 10, got %+v", cands)
	}
}

func TestCandidates_Unit2Alignment(t *testing.T) {
	// 6 units of 2 bytes each; unit 0 == unit 2 == unit 4 (pattern repeats every 2 units).
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xAA, 0xBB, 0xCC, 0xDD, 0xAA, 0xBB, 0xCC, 0xDD}
	limits := []lzcore.FindLimitations{{MinLength: 2, MaxLength: 100, MinDisplacement: 1, MaxDisplacement: 100}}
	f := New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit2})

	for pos := range 4 {
		f.Candidates(pos)
	}
	cands := f.Candidates(4) // unit position 4 = byte offset 8
	found := false
	for _, m := range cands {
		if m.Displacement == 2 { // 2 units back = 4 bytes = unit position 2
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a unit-aligned displacement-2 match, got %+v", cands)
	}
}

func TestCandidates_AllLegalMatchesSatisfyLimitations(t *testing.T) {
	data := []byte("the quick brown fox jumps over the quick brown fox")
	limits := []lzcore.FindLimitations{
		{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096},
	}
	f := New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})
	normalized := limits[0].Normalized()

	for pos := range len(data) {
		for _, m := range f.Candidates(pos) {
			if !normalized.Allows(m.Length, m.Displacement) {
				t.Fatalf("illegal candidate emitted: %+v", m)
			}
		}
	}
}
