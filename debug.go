// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// FormatOption tweaks FormatTree's output, in the same spirit as
// saferwall/pe's cmd/dump.go prettyPrint taking a config struct of
// per-section toggles.
type FormatOption func(*formatConfig)

type formatConfig struct {
	extensionBlocks bool
	names           IdentifierNameResolver
}

// WithExtensionBlocks makes FormatTree print each item's extension-block
// chain, not just its variant value.
func WithExtensionBlocks() FormatOption {
	return func(c *formatConfig) { c.extensionBlocks = true }
}

// WithNames supplies the IdentifierNameResolver used to render GUIDs as
// display names; DefaultKnownFolders is used if this option is absent.
func WithNames(names IdentifierNameResolver) FormatOption {
	return func(c *formatConfig) { c.names = names }
}

// FormatTree renders a parsed ItemList as an indented, human-readable
// tree: a thin, separate presentation layer kept out of the core parser.
// It is grounded on cmd/dump.go's prettyPrint/tabwriter usage in
// saferwall/pe, generalized from one fixed PE-section table to one row
// per shell item.
func FormatTree(w io.Writer, list *ItemList, opts ...FormatOption) error {
	cfg := &formatConfig{names: DefaultKnownFolders}
	for _, opt := range opts {
		opt(cfg)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tKind\tClassType\tSignature\tDataSize\tSummary\n")

	for i, item := range list.Items() {
		summary := summarizeItem(&item, cfg.names)
		fmt.Fprintf(tw, "%d\t%s\t0x%02X\t0x%08X\t%d\t%s\n",
			i, item.Kind, item.ClassType, item.Signature, item.DataSize, summary)

		if cfg.extensionBlocks {
			for _, ext := range item.Extensions {
				fmt.Fprintf(tw, "\t  ext\t-\t0x%08X\t%d\t%s\n", ext.Signature, ext.DataSize, summarizeExtension(&ext))
			}
		}
	}

	return tw.Flush()
}

func summarizeItem(item *Item, names IdentifierNameResolver) string {
	switch item.Kind {
	case KindRootFolder:
		if v, ok := item.AsRootFolder(); ok {
			return v.Name(names)
		}
	case KindVolume:
		if v, ok := item.AsVolume(); ok {
			if v.HasName {
				return v.Name
			}
			return v.ShellFolderID.String()
		}
	case KindFileEntry:
		if v, ok := item.AsFileEntry(); ok {
			return v.PrimaryName
		}
	case KindNetworkLocation:
		if v, ok := item.AsNetworkLocation(); ok {
			return v.Location
		}
	case KindControlPanelItem:
		if v, ok := item.AsControlPanelItem(); ok {
			return v.Name(names)
		}
	case KindControlPanelCPLFile:
		if v, ok := item.AsControlPanelCPLFile(); ok {
			return v.DisplayName
		}
	case KindUsersPropertyView:
		if v, ok := item.AsUsersPropertyView(); ok {
			return v.Name(names)
		}
	case KindURI:
		if v, ok := item.AsURI(); ok {
			return v.URIString
		}
	case KindURISubValues:
		if v, ok := item.AsURISubValues(); ok {
			return v.URL
		}
	}
	if item.DelegateFolderID != nil {
		return "delegate:" + item.DelegateFolderID.String()
	}
	return ""
}

func summarizeExtension(ext *ExtensionBlock) string {
	if v, ok := ext.AsFileEntryExtension(); ok {
		parts := []string{"long-name=" + v.LongName}
		if v.HasLocalizedName {
			parts = append(parts, "localized-name="+v.LocalizedName)
		}
		return strings.Join(parts, " ")
	}
	return ""
}
