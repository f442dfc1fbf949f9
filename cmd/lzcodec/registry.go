// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retrocodec/lzcore/formats"
)

func registry() map[string]formats.Format {
	all := []formats.Format{
		formats.LZ10{}, formats.LZ11{}, formats.LZ40{}, formats.LZ60{},
		formats.LZSS{}, formats.LZ77{}, formats.BackwardLZ77{}, formats.LzEcd{},
		formats.Lze{}, formats.LzssVlc{}, formats.WP16{},
		formats.MIO0{}, formats.YAY0{}, formats.YAZ0{},
		formats.TaikoLZ80{}, formats.TaikoLZ81{},
		formats.NewNinHuffman4(), formats.NewNinHuffman8(), formats.NinRLE{},
		formats.TalesOf01{}, formats.TalesOf03{}, formats.LzEnc{},
	}
	m := make(map[string]formats.Format, len(all))
	for _, f := range all {
		m[strings.ToLower(f.Name())] = f
	}
	return m
}

func lookupFormat(name string) (formats.Format, error) {
	f, ok := registry()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

func formatNames() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
