package formats

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/retrocodec/lzcore"
)

func encodableFormats() []Format {
	return []Format{
		LZ10{}, LZ11{}, LZ40{}, LZ60{}, LZSS{}, LZ77{}, BackwardLZ77{},
		LzEcd{}, Lze{}, LzssVlc{}, WP16{}, MIO0{}, YAY0{}, YAZ0{},
		TaikoLZ80{}, TaikoLZ81{}, NewNinHuffman4(), NewNinHuffman8(), NinRLE{},
	}
}

func decodeOnlyFormats() []Format {
	return []Format{TalesOf01{}, TalesOf03{}, LzEnc{}}
}

func roundTripInputs() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single-byte", []byte{0x42}},
		{"short-text", []byte("the quick brown fox jumps over the lazy dog")},
		{"repeated-pattern", bytes.Repeat([]byte("abc123"), 200)},
		{"long-run", bytes.Repeat([]byte{0xFF}, 600)},
		{"byte-cycle", bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 120)},
		{"uniform-symbol", bytes.Repeat([]byte{0x5A}, 500)},
	}
}

func TestFormats_RoundTrip(t *testing.T) {
	for _, f := range encodableFormats() {
		f := f
		t.Run(f.Name(), func(t *testing.T) {
			if !f.CanEncode() {
				t.Fatalf("%s is listed as encodable but CanEncode() is false", f.Name())
			}
			for _, in := range roundTripInputs() {
				t.Run(in.name, func(t *testing.T) {
					var buf bytes.Buffer
					if err := f.Encode(in.data, &buf); err != nil {
						var lerr *lzcore.Error
						if errors.As(err, &lerr) && lerr.Kind == lzcore.HuffmanCapExceeded {
							t.Skipf("alphabet too large for %s's code-length table: %v", f.Name(), err)
						}
						t.Fatalf("Encode: %v", err)
					}
					var out bytes.Buffer
					if err := f.Decode(bytes.NewReader(buf.Bytes()), &out); err != nil {
						t.Fatalf("Decode: %v", err)
					}
					if !bytes.Equal(out.Bytes(), in.data) {
						t.Fatalf("round-trip mismatch: got %d bytes, want %d", len(out.Bytes()), len(in.data))
					}
				})
			}
		})
	}
}

func TestFormats_DecodeOnlyReportsUnsupportedOperation(t *testing.T) {
	for _, f := range decodeOnlyFormats() {
		f := f
		t.Run(f.Name(), func(t *testing.T) {
			if f.CanEncode() {
				t.Fatalf("%s is listed as decode-only but CanEncode() is true", f.Name())
			}
			var buf bytes.Buffer
			err := f.Encode([]byte("anything"), &buf)
			if err == nil {
				t.Fatal("expected UnsupportedOperation, got nil")
			}
			var lerr *lzcore.Error
			if !errors.As(err, &lerr) || lerr.Kind != lzcore.UnsupportedOperation {
				t.Fatalf("expected UnsupportedOperation, got %v", err)
			}
		})
	}
}

func TestFormats_NamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range append(encodableFormats(), decodeOnlyFormats()...) {
		if seen[f.Name()] {
			t.Fatalf("duplicate format name %q", f.Name())
		}
		seen[f.Name()] = true
	}
}

func ExampleLZ10_Encode() {
	var buf bytes.Buffer
	_ = LZ10{}.Encode([]byte("ABABABABAB"), &buf)

	var out bytes.Buffer
	_ = LZ10{}.Decode(bytes.NewReader(buf.Bytes()), &out)
	fmt.Println(out.String())
	// Output: ABABABABAB
}
