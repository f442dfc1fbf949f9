// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

// Command lzcodec is a CLI front end over the format adapters in
// github.com/retrocodec/lzcore/formats: encode, decode, and identify.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocodec/lzcore/formats"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lzcodec",
		Short: "Encode, decode, and identify legacy console compression formats",
	}
	cmd.AddCommand(newEncodeCommand())
	cmd.AddCommand(newDecodeCommand())
	cmd.AddCommand(newIdentifyCommand())
	return cmd
}

func newEncodeCommand() *cobra.Command {
	var formatName, inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compress a raw input file with the named format",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFormat(formatName)
			if err != nil {
				return err
			}
			if !f.CanEncode() {
				return fmt.Errorf("%s is decode-only", f.Name())
			}

			input, err := readInput(inputPath)
			if err != nil {
				return err
			}
			out, closeOut, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOut()

			return f.Encode(input, out)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "format name (required)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "input file, - for stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("format")
	return cmd
}

func newDecodeCommand() *cobra.Command {
	var formatName, inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decompress a compressed input file with the named format",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFormat(formatName)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOut()

			return f.Decode(in, out)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "format name (required)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "input file, - for stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("format")
	return cmd
}

func newIdentifyCommand() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "identify [magic-name...]",
		Short: "Report which of the given magic-tag names match the input's leading bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"CTPK", "MIO0", "YAY0", "YAZ0"}
			}
			input, err := readInput(inputPath)
			if err != nil {
				return err
			}
			for _, name := range args {
				if formats.Identify(name, input) {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "input file, - for stdin")
	return cmd
}

func readInput(path string) ([]byte, error) {
	r, closeR, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeR()
	return io.ReadAll(r)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
