package corpus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/formats"
)

func encodableFormats() []formats.Format {
	return []formats.Format{
		formats.LZ10{}, formats.LZ11{}, formats.LZ40{}, formats.LZ60{},
		formats.LZSS{}, formats.LZ77{}, formats.BackwardLZ77{}, formats.LzEcd{},
		formats.Lze{}, formats.LzssVlc{}, formats.WP16{},
		formats.MIO0{}, formats.YAY0{}, formats.YAZ0{},
		formats.TaikoLZ80{}, formats.TaikoLZ81{},
		formats.NewNinHuffman4(), formats.NewNinHuffman8(), formats.NinRLE{},
	}
}

func TestCorpus_RoundTripEveryFormat(t *testing.T) {
	for _, f := range encodableFormats() {
		f := f
		t.Run(f.Name(), func(t *testing.T) {
			for _, fx := range All() {
				fx := fx
				t.Run(fx.Name, func(t *testing.T) {
					var buf bytes.Buffer
					if err := f.Encode(fx.Data, &buf); err != nil {
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
					if diff := cmp.Diff(fx.Data, out.Bytes()); diff != "" {
						t.Fatalf("round-trip mismatch on %q (-want +got):\n%s", fx.Name, diff)
					}
				})
			}
		})
	}
}
