// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"encoding/binary"
	"io"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/matchfind"
	"github.com/retrocodec/lzcore/parser"
)

const (
	yaz0MinLen, yaz0MaxLen   = 3, 0x111
	yaz0MinDisp, yaz0MaxDisp = 1, 0x1000
)

var yaz0Magic = [4]byte{'Y', 'a', 'z', '0'}

// YAZ0 is YAY0's single-stream sibling: flag bits, literal bytes, and match
// tokens all interleave in one body instead of three separate streams.
// Lengths use the same zero-nibble extended escape as YAY0.
type YAZ0 struct{}

func (YAZ0) Name() string                 { return "YAZ0" }
func (YAZ0) CanEncode() bool               { return true }
func (YAZ0) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (YAZ0) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: yaz0MinLen, MaxLength: yaz0MaxLen, MinDisplacement: yaz0MinDisp, MaxDisplacement: yaz0MaxDisp}}
}

func (YAZ0) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f YAZ0) Encode(input []byte, w io.Writer) error {
	fdr := matchfind.New(input, f.Limitations(), f.Options())
	tokens := parser.Parse(input, 1, fdr.Candidates, f.Price(), 0)

	header := make([]byte, 16)
	copy(header[0:4], yaz0Magic[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(input)))
	if _, err := w.Write(header); err != nil {
		return err
	}

	var flag byte
	var n uint
	var body []byte
	flush := func() error {
		if _, err := w.Write([]byte{flag}); err != nil {
			return err
		}
		if _, err := w.Write(body); err != nil {
			return err
		}
		flag, n, body = 0, 0, body[:0]
		return nil
	}

	for _, tok := range tokens {
		if !tok.IsMatch {
			flag |= 1 << (7 - n)
			body = append(body, tok.Literal.Value)
		} else {
			disp := tok.Match.Displacement - 1
			length := tok.Match.Length
			if length > 0x11 {
				body = append(body, byte(disp>>8), byte(disp), byte(length-0x12))
			} else {
				body = append(body, byte((length-2)<<4)|byte(disp>>8), byte(disp))
			}
		}
		n++
		if n == 8 {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if n > 0 {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

func (YAZ0) Decode(r io.Reader, w io.Writer) error {
	all, err := io.ReadAll(r)
	if err != nil {
		return lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	if len(all) < 16 || string(all[0:4]) != string(yaz0Magic[:]) {
		return lzcore.NewError(lzcore.MalformedToken, "unexpected YAZ0 magic")
	}
	size := int(binary.LittleEndian.Uint32(all[4:8]))
	body := all[16:]

	out := make([]byte, 0, size)
	pos := 0
	for len(out) < size {
		if pos >= len(body) {
			return lzcore.NewError(lzcore.TruncatedInput, "flag byte missing")
		}
		flag := body[pos]
		pos++
		for bit := 0; bit < 8 && len(out) < size; bit++ {
			if flag&(1<<(7-bit)) != 0 {
				if pos >= len(body) {
					return lzcore.NewError(lzcore.TruncatedInput, "literal byte missing")
				}
				out = append(out, body[pos])
				pos++
				continue
			}

			if pos+2 > len(body) {
				return lzcore.NewError(lzcore.TruncatedInput, "match bytes missing")
			}
			b0, b1 := body[pos], body[pos+1]
			pos += 2
			nib := int(b0 >> 4)
			disp := (int(b0&0xF)<<8 | int(b1)) + 1

			var length int
			if nib == 0 {
				if pos >= len(body) {
					return lzcore.NewError(lzcore.TruncatedInput, "extended-length byte missing")
				}
				length = int(body[pos]) + 0x12
				pos++
			} else {
				length = nib + 2
			}

			copyPos := len(out)
			out = append(out, make([]byte, length)...)
			if err := copyBackRef(out, copyPos, disp, length); err != nil {
				return err
			}
			if len(out) > size {
				out = out[:size]
			}
		}
	}

	_, err = w.Write(out)
	return err
}
