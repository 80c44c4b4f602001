// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Command gfxdraw is a small CLI front end for the rasterizer: it parses
// a path mini-language string given on the command line, draws it to an
// in-memory canvas sized and coloured by a TOML config (or the built-in
// defaults), and writes a PNG preview.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gfxdraw",
	Short: "gfxdraw renders gfxDraw path mini-language shapes to a PNG preview",
	Long:  `gfxdraw is a preview tool for the gfxDraw rasterizer: it is not part of the core, which never touches image.Image or file I/O.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
