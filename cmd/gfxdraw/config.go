// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathertel/gfxDraw/gfxcfg"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config-init",
	Short: "Write a gfxdraw.toml with the default settings to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gfxcfg.Save(".", gfxcfg.Default()); err != nil {
			return err
		}
		fmt.Println("wrote gfxdraw.toml")
		return nil
	},
}
