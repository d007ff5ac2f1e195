// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/forensicxlab/fwsi"
)

func main() {
	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpCodepage := dumpCmd.Uint("codepage", uint(fwsi.CodepageASCII), "single-byte code page for extended-ASCII strings")
	dumpExtensions := dumpCmd.Bool("extensions", false, "dump extension blocks per item")
	dumpNames := dumpCmd.Bool("names", true, "resolve known identifiers to display names")

	verCmd := flag.NewFlagSet("version", flag.ExitOnError)

	if len(os.Args) < 2 {
		showHelp()
	}

	switch os.Args[1] {
	case "dump":
		dumpCmd.Parse(os.Args[3:])
		if len(os.Args) < 3 {
			showHelp()
		}
		dump(os.Args[2], *dumpCodepage, *dumpExtensions, *dumpNames)
	case "version":
		verCmd.Parse(os.Args[2:])
		fmt.Println("You are using version 0.1.0")
	default:
		showHelp()
	}
}

func dump(path string, codepage uint, wantExtensions, wantNames bool) {
	src, err := fwsi.OpenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fwsidump: open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer src.Close()

	opts := &fwsi.ItemListOptions{Codepage: fwsi.Codepage(codepage)}
	if !wantNames {
		opts.IdentifierNames = fwsi.NoIdentifierNames
	}

	list, err := src.Parse(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fwsidump: parse %s: %v\n", path, err)
		os.Exit(1)
	}

	format := []fwsi.FormatOption{}
	if wantExtensions {
		format = append(format, fwsi.WithExtensionBlocks())
	}
	if !wantNames {
		format = append(format, fwsi.WithNames(fwsi.NoIdentifierNames))
	}
	if err := fwsi.FormatTree(os.Stdout, list, format...); err != nil {
		fmt.Fprintf(os.Stderr, "fwsidump: format %s: %v\n", path, err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Print(
		`
┌─┐┬ ┬┌─┐┬┌┬┐┬ ┬┌┬┐┌─┐
├┤ │││└─┐│ │││ │││││├─┘
└  └┴┘└─┘┴─┴┘└─┴┴ ┴┴

	A Windows Shell Item / Shell Item List decoder for forensic artifacts.
`)
	fmt.Println("\nAvailable sub-commands: 'dump <file>' or 'version'")
	os.Exit(1)
}
