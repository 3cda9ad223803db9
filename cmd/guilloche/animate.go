// guilloche - parametric roulette ornaments
// Copyright (C) 2026  The guilloche authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/prabinpebam/guilloche"
)

func animateCommand(a *app) *cobra.Command {
	var outDir, liveFile string
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render the oscillating displacement as a frame sequence",
		Long: "Render the animation as PNG frames. The displacement phase turns by\n" +
			"360° and the amplitude swings by ±30 over every 5 seconds.\n\n" +
			"With --live, a single image is rewritten at the configured frame\n" +
			"rate until interrupted or until --duration has passed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.params(false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if liveFile != "" {
				if duration > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, duration)
					defer cancel()
				}
				return a.animateLive(ctx, base, liveFile)
			}
			return a.animateFrames(ctx, base, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "frames", "directory for the frame images")
	cmd.Flags().StringVar(&liveFile, "live", "", "rewrite this image continuously instead of writing frames")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop live mode after this time, 0 runs until interrupted")
	return cmd
}

// frameTime returns the time of frame i.
func (a *app) frameTime(i int) time.Duration {
	return time.Duration(float64(i) / a.conf.Animation.FPS * float64(time.Second))
}

// animateFrames renders the configured number of frames concurrently.
// Every frame has its own canvas.
func (a *app) animateFrames(ctx context.Context, base guilloche.Params, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	frames := a.conf.Animation.Frames
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.conf.Animation.Workers)
	for i := range frames {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			elapsed := a.frameTime(i)
			p := base.Animated(elapsed)
			canvas, err := a.newCanvas(p)
			if err != nil {
				return err
			}
			guilloche.Render(canvas, p, a.conf.Canvas.Width, a.conf.Canvas.Height)

			name := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
			if err := writeFile(name, canvas.EncodePNG); err != nil {
				return err
			}
			log.Debug().Int("frame", i).Dur("elapsed", elapsed).Str("path", name).Msg("frame written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info().
		Int("frames", frames).
		Str("dir", outDir).
		Dur("took", time.Since(start)).
		Msg("animation written")
	return nil
}

// animateLive rewrites one image per tick until ctx is done.
func (a *app) animateLive(ctx context.Context, base guilloche.Params, fileName string) error {
	canvas, err := a.newCanvas(base)
	if err != nil {
		return err
	}
	interval := time.Duration(float64(time.Second) / a.conf.Animation.FPS)
	tmpName := fileName + ".tmp"

	frames := 0
	err = guilloche.Animate(ctx, interval, base, func(elapsed time.Duration, p guilloche.Params) error {
		guilloche.Render(canvas, p, a.conf.Canvas.Width, a.conf.Canvas.Height)
		if err := writeFile(tmpName, canvas.EncodePNG); err != nil {
			return err
		}
		frames++
		return os.Rename(tmpName, fileName)
	})
	log.Info().Int("frames", frames).Str("path", fileName).Msg("live animation stopped")

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
