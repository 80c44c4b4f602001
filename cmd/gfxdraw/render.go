// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mathertel/gfxDraw/gfxcfg"
	"github.com/mathertel/gfxDraw/internal/demoimage"
	"github.com/mathertel/gfxDraw/widget"
)

var renderPath string
var renderDir string

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderPath, "path", "p", "M10 10 H50 V50 H10 Z", "path mini-language text to draw")
	renderCmd.Flags().StringVarP(&renderDir, "config-dir", "c", ".", "directory to look for gfxdraw.toml in")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a path string and write a PNG preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := gfxcfg.Load(renderDir)
		if err != nil {
			return err
		}

		bg, err := gfxcfg.ParseColour(cfg.Background)
		if err != nil {
			return err
		}
		stroke, err := gfxcfg.ParseColour(cfg.StrokeColour)
		if err != nil {
			return err
		}
		fillCol, err := gfxcfg.ParseColour(cfg.FillColour)
		if err != nil {
			return err
		}

		w := widget.New()
		w.SetPath(renderPath)
		w.StrokeColour = stroke
		w.FillColour = fillCol

		canvas := demoimage.NewCanvas(cfg.Width, cfg.Height, bg)
		w.Draw(canvas.Set)

		if err := canvas.WritePNG(cfg.OutputPath, 4); err != nil {
			return err
		}
		log.Printf("wrote %s (bounds %d,%d - %d,%d)", cfg.OutputPath, w.MinX, w.MinY, w.MaxX, w.MaxY)
		return nil
	},
}
