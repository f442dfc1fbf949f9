package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeDecode_RoundTripViaCLI(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	compressedPath := filepath.Join(dir, "out.lz10")
	decodedPath := filepath.Join(dir, "roundtrip.bin")

	input := bytes.Repeat([]byte("ABABABABAB"), 10)
	if err := os.WriteFile(inputPath, input, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	encode := newEncodeCommand()
	encode.SetArgs([]string{"-f", "lz10", "-i", inputPath, "-o", compressedPath})
	if err := encode.Execute(); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decode := newDecodeCommand()
	decode.SetArgs([]string{"-f", "lz10", "-i", compressedPath, "-o", decodedPath})
	if err := decode.Execute(); err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := os.ReadFile(decodedPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("round-trip mismatch: got %d bytes, want %d", len(out), len(input))
	}
}

func TestEncode_UnknownFormatFails(t *testing.T) {
	cmd := newEncodeCommand()
	cmd.SetArgs([]string{"-f", "not-a-real-format", "-i", "-", "-o", "-"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown format name")
	}
}

func TestEncode_DecodeOnlyFormatRejected(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	if err := os.WriteFile(inputPath, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := newEncodeCommand()
	cmd.SetArgs([]string{"-f", "lzenc", "-i", inputPath, "-o", "-"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error encoding with a decode-only format")
	}
}

func TestIdentify_MatchesKnownMagic(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "container.bin")
	if err := os.WriteFile(inputPath, []byte("MIO0\x00\x00\x00\x00"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout bytes.Buffer
	cmd := newIdentifyCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"-i", inputPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("identify: %v", err)
	}
	if stdout.String() != "MIO0\n" {
		t.Fatalf("expected MIO0 to be identified, got %q", stdout.String())
	}
}
