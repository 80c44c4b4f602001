// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathertel/gfxDraw/pathparse"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path text]",
	Short: "Parse a path mini-language string and print its segments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		segs, stop := pathparse.Parse(args[0])
		for i, s := range segs {
			fmt.Printf("%2d: %s\n", i, s.Kind)
		}
		if stop < len(args[0]) {
			fmt.Printf("stopped at byte %d: %q\n", stop, args[0][stop:])
		}
		return nil
	},
}
