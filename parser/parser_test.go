package parser

import (
	"testing"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/matchfind"
)

// flatPrice is a simple, non-negative price calculator: 9 bits per literal
// (1 flag bit + 8 data bits) and 17 bits per match (1 flag bit + length +
// displacement fields), loosely modeled on LZ10-style token costs.
type flatPrice struct{}

func (flatPrice) LiteralPrice(byte) int       { return 9 }
func (flatPrice) MatchPrice(lzcore.Match) int { return 17 }

func TestParse_CoversInputWithNoOverlap(t *testing.T) {
	data := []byte("ABABABABAB")
	limits := []lzcore.FindLimitations{{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096}}
	f := matchfind.New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})

	tokens := Parse(data, 1, f.Candidates, flatPrice{}, 0)
	assertCoverage(t, tokens, len(data))
}

func TestParse_LZ10Scenario(t *testing.T) {
	// Scenario 1: LZ10 encode of "ABABABABAB" -> one literal 'A', one
	// literal 'B', then one match (length=8, displacement=2).
	data := []byte("ABABABABAB")
	limits := []lzcore.FindLimitations{{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096}}
	f := matchfind.New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})

	tokens := Parse(data, 1, f.Candidates, flatPrice{}, 0)
	assertCoverage(t, tokens, len(data))

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].IsMatch || tokens[0].Literal.Value != 'A' {
		t.Fatalf("token 0 = %+v, want literal 'A'", tokens[0])
	}
	if tokens[1].IsMatch || tokens[1].Literal.Value != 'B' {
		t.Fatalf("token 1 = %+v, want literal 'B'", tokens[1])
	}
	if !tokens[2].IsMatch || tokens[2].Match.Length != 8 || tokens[2].Match.Displacement != 2 {
		t.Fatalf("token 2 = %+v, want match(length=8, displacement=2)", tokens[2])
	}
}

func TestParse_SkipUnitsAfterMatch(t *testing.T) {
	// Scenario 5: LZ77 encode of "ABCABC" with skip_units_after_match=1:
	// parse is ['A','B','C', match(3,3)]: skip forbids starting another
	// match at the position immediately after the one just emitted.
	data := []byte("ABCABC")
	limits := []lzcore.FindLimitations{{MinLength: 1, MaxLength: 255, MinDisplacement: 1, MaxDisplacement: 255}}
	f := matchfind.New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})

	tokens := Parse(data, 1, f.Candidates, flatPrice{}, 1)
	assertCoverage(t, tokens, len(data))

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}
	for i, want := range []byte("ABC") {
		if tokens[i].IsMatch || tokens[i].Literal.Value != want {
			t.Fatalf("token %d = %+v, want literal %q", i, tokens[i], want)
		}
	}
	last := tokens[3]
	if !last.IsMatch || last.Match.Length != 3 || last.Match.Displacement != 3 {
		t.Fatalf("token 3 = %+v, want match(length=3, displacement=3)", last)
	}
}

func assertCoverage(t *testing.T, tokens []lzcore.Token, n int) {
	t.Helper()
	pos := 0
	for _, tok := range tokens {
		if tok.IsMatch {
			if tok.Match.Position != pos {
				t.Fatalf("match position %d != expected %d (overlap/gap)", tok.Match.Position, pos)
			}
			pos += tok.Match.Length
		} else {
			if tok.Literal.Position != pos {
				t.Fatalf("literal position %d != expected %d (overlap/gap)", tok.Literal.Position, pos)
			}
			pos++
		}
	}
	if pos != n {
		t.Fatalf("coverage ended at %d, want %d", pos, n)
	}
}

// bruteForceCost is an intentionally naive memoized DP that tries every
// (length, displacement) pair at each position, O(N^2 * maxLen) (distinct
// implementation from Parse), used only as an independent optimality oracle
// for small inputs.
func bruteForceCost(data []byte, limits []lzcore.FindLimitations, price lzcore.PriceCalculator) int {
	n := len(data)
	normalized := make([]lzcore.FindLimitations, len(limits))
	for i, l := range limits {
		normalized[i] = l.Normalized()
	}

	memo := make(map[int]int)
	var best func(pos int) int
	best = func(pos int) int {
		if pos == n {
			return 0
		}
		if v, ok := memo[pos]; ok {
			return v
		}

		result := price.LiteralPrice(data[pos]) + best(pos+1)

		maxLen := 0
		for _, l := range normalized {
			if l.MaxLength > maxLen {
				maxLen = l.MaxLength
			}
		}
		if maxLen > n-pos {
			maxLen = n - pos
		}

		for length := 1; length <= maxLen; length++ {
			for disp := 1; disp <= pos; disp++ {
				if !matches(data, pos, disp, length) {
					continue
				}
				ok := false
				for _, l := range normalized {
					if l.Allows(length, disp) {
						ok = true
						break
					}
				}
				if !ok {
					continue
				}
				m := lzcore.Match{Position: pos, Displacement: disp, Length: length}
				cand := price.MatchPrice(m) + best(pos+length)
				if cand < result {
					result = cand
				}
			}
		}

		memo[pos] = result
		return result
	}

	return best(0)
}

func matches(data []byte, pos, disp, length int) bool {
	src := pos - disp
	if src < 0 {
		return false
	}
	for i := 0; i < length; i++ {
		if pos+i >= len(data) || data[src+i] != data[pos+i] {
			return false
		}
	}
	return true
}

func TestParse_OptimalityAgainstBruteForce(t *testing.T) {
	limits := []lzcore.FindLimitations{{MinLength: 3, MaxLength: 18, MinDisplacement: 1, MaxDisplacement: 4096}}

	inputs := [][]byte{
		[]byte("ABABABABAB"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("abcabcabcabcxyzxyzxyz"),
		[]byte("the quick brown fox the quick brown fox"),
		[]byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 4, 5, 6},
	}

	for _, data := range inputs {
		if len(data) > 64 {
			t.Fatalf("test input too large for brute-force oracle: %d", len(data))
		}

		f := matchfind.New(data, limits, lzcore.FindOptions{UnitSize: lzcore.Unit1})
		tokens := Parse(data, 1, f.Candidates, flatPrice{}, 0)
		assertCoverage(t, tokens, len(data))

		got := 0
		for _, tok := range tokens {
			if tok.IsMatch {
				got += flatPrice{}.MatchPrice(tok.Match)
			} else {
				got += flatPrice{}.LiteralPrice(tok.Literal.Value)
			}
		}

		want := bruteForceCost(data, limits, flatPrice{})
		if got != want {
			t.Fatalf("parser cost %d != brute-force optimal %d for %q", got, want, data)
		}
	}
}
