package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retrocodec/lzcore/matchfind"
	"github.com/retrocodec/lzcore/parser"
)

func TestScenario_LZ10_Alternating(t *testing.T) {
	input := []byte("ABABABABAB")

	f := LZ10{}
	fdr := matchfind.New(input, f.Limitations(), f.Options())
	tokens := parser.Parse(input, 1, fdr.Candidates, f.Price(), 0)

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].IsMatch || tokens[0].Literal.Value != 'A' {
		t.Fatalf("token 0 expected literal 'A', got %+v", tokens[0])
	}
	if tokens[1].IsMatch || tokens[1].Literal.Value != 'B' {
		t.Fatalf("token 1 expected literal 'B', got %+v", tokens[1])
	}
	if !tokens[2].IsMatch || tokens[2].Match.Length != 8 || tokens[2].Match.Displacement != 2 {
		t.Fatalf("token 2 expected match(length=8, displacement=2), got %+v", tokens[2])
	}

	var buf bytes.Buffer
	if err := f.Encode(input, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out bytes.Buffer
	if err := f.Decode(&buf, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Fatalf("round-trip mismatch: got %q want %q", out.Bytes(), input)
	}
}

func TestScenario_LzEcd_AllZeroPreBufferReach(t *testing.T) {
	input := make([]byte, 0x500)

	f := LzEcd{}
	var buf bytes.Buffer
	if err := f.Encode(input, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out bytes.Buffer
	if err := f.Decode(&buf, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Fatalf("round-trip mismatch: got %d bytes want %d", len(out.Bytes()), len(input))
	}
}

func TestScenario_BackwardLZ77_Palindrome(t *testing.T) {
	half := bytes.Repeat([]byte("ab"), 256)
	input := append(append([]byte{}, half...), reversed(half)...)
	if len(input) != 1024 {
		t.Fatalf("palindrome setup: got %d bytes", len(input))
	}
	for i, j := 0, len(input)-1; i < j; i, j = i+1, j-1 {
		if input[i] != input[j] {
			t.Fatalf("input is not a palindrome at %d/%d", i, j)
		}
	}

	f := BackwardLZ77{}
	reversedInput := reversed(input)
	fdr := matchfind.New(reversedInput, f.Limitations(), f.Options())
	tokens := parser.Parse(reversedInput, 1, fdr.Candidates, f.Price(), 0)
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	first := tokens[0]
	if first.IsMatch {
		if first.Match.Position != 0 {
			t.Fatalf("first token should cover the start of the reversed input (the original's final bytes), got position %d", first.Match.Position)
		}
	} else if first.Literal.Position != 0 {
		t.Fatalf("first token should start at position 0, got %d", first.Literal.Position)
	}

	var buf bytes.Buffer
	if err := f.Encode(input, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out bytes.Buffer
	if err := f.Decode(&buf, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestScenario_NinHuffman4_DegenerateTree(t *testing.T) {
	input := bytes.Repeat([]byte{0x5A}, 4096)

	f := NewNinHuffman4()
	var buf bytes.Buffer
	if err := f.Encode(input, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// header (4) + 256-byte length table; the only symbol gets length 1 and
	// every other entry stays 0 (LimitLengths adds no sibling entry).
	table := buf.Bytes()[4 : 4+256]
	if table[0x5A] != 1 {
		t.Fatalf("expected code length 1 for the only symbol, got %d", table[0x5A])
	}

	var out bytes.Buffer
	if err := f.Decode(bytes.NewReader(buf.Bytes()), &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestScenario_LZ77_SkipAfterMatch(t *testing.T) {
	input := []byte("ABCABC")

	f := LZ77{}
	fdr := matchfind.New(input, f.Limitations(), f.Options())
	tokens := parser.Parse(input, 1, fdr.Candidates, f.Price(), f.Options().SkipUnitsAfterMatch)

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}
	wantLiterals := "ABC"
	for i, want := range wantLiterals {
		if tokens[i].IsMatch || tokens[i].Literal.Value != byte(want) {
			t.Fatalf("token %d expected literal %q, got %+v", i, string(want), tokens[i])
		}
	}
	if !tokens[3].IsMatch || tokens[3].Match.Length != 3 || tokens[3].Match.Displacement != 3 {
		t.Fatalf("token 3 expected match(length=3, displacement=3), got %+v", tokens[3])
	}

	var buf bytes.Buffer
	if err := f.Encode(input, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out bytes.Buffer
	if err := f.Decode(&buf, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Fatalf("round-trip mismatch: got %q want %q", out.Bytes(), input)
	}
}

func TestIdentify_CTPKMagic(t *testing.T) {
	if !Identify("CTPK", []byte("CTPK\x00\x00\x00\x00")) {
		t.Fatal("expected CTPK magic to be identified")
	}
	if Identify("CTPK", []byte("CTP")) {
		t.Fatal("short input must not match")
	}
	if Identify("CTPK", []byte(strings.Repeat("x", 4))) {
		t.Fatal("non-matching 4 bytes must not match")
	}
}
