package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ZacxDev/video-compare/internal/compositor"
	"github.com/ZacxDev/video-compare/internal/logging"
	"github.com/ZacxDev/video-compare/pkg/types"
	"github.com/ZacxDev/video-compare/pkg/videocompare"
)

var settings *videocompare.Settings

var (
	rootCmd = &cobra.Command{
		Use:   "video-compare",
		Short: "Compare two videos in split or side by side view",
		Long: `video-compare places two videos of the same resolution on one canvas, either
split by a movable border or side by side, with shared zoom and pan.

Settings are read from config.toml (working directory or the user config
directory under codeccomp/) and CODECCOMP_* environment variables, for example
CODECCOMP_INPUT__WIDTH=1920.

Examples:
  # Show pane positions after zooming in twice and panning right
  video-compare positions --keys plus,plus,Right

  # Render a side by side comparison
  video-compare render --mode sidebyside -o cmp.mp4 reference.mp4 candidate.mp4`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")

			loaded, err := videocompare.LoadSettings(configFile)
			if err != nil {
				return err
			}
			if verbose {
				loaded.Debug = true
			}
			settings = loaded

			logger := logging.New(settings.Logging())
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))
			return nil
		},
	}

	positionsCmd = &cobra.Command{
		Use:   "positions",
		Short: "Print the pane positions for a key script",
		Long: `Apply navigation keys to a compositor and print its state, both pane
positions and the mixer settings as JSON.

Keys: Left, Right, Up, Down, plus, minus, r (reset position), R (reset),
1 (border left), 2 (border right), 3 (border center), 4 (side by side),
5 (border -10), 6 (border +10).

Example:
  video-compare positions --mode split --width 1920 --height 1080 --keys plus,Left,5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := videocompare.PositionsOptions{
				Mode:    modeFromSettings(),
				Width:   settings.Input.Width,
				Height:  settings.Input.Height,
				Backend: types.MixerBackend(settings.Backend),
			}

			if cmd.Flags().Changed("mode") {
				mode, _ := cmd.Flags().GetString("mode")
				opts.Mode = types.ViewMode(mode)
			}
			if cmd.Flags().Changed("width") {
				opts.Width, _ = cmd.Flags().GetInt("width")
			}
			if cmd.Flags().Changed("height") {
				opts.Height, _ = cmd.Flags().GetInt("height")
			}
			if cmd.Flags().Changed("backend") {
				name, _ := cmd.Flags().GetString("backend")
				opts.Backend = types.MixerBackend(name)
			}
			opts.Keys, _ = cmd.Flags().GetString("keys")

			positions, err := videocompare.ComputePositions(cmd.Context(), opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(positions)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render <left> <right>",
		Short: "Render a comparison video of two inputs",
		Long: `Probe both inputs, apply the navigation keys and compose one video with
ffmpeg. The left input is pane 0, the right input pane 1.

Example:
  video-compare render -o cmp.webm --keys plus,plus,1 reference.mp4 candidate.mp4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mode") {
				name, _ := cmd.Flags().GetString("mode")
				mode, ok := compositor.ParseMode(name)
				if !ok {
					return errors.Wrapf(videocompare.ErrUnknownMode, "%q", name)
				}
				settings.SideBySide = mode == compositor.SideBySide
			}
			if cmd.Flags().Changed("labels") {
				settings.Render.Labels, _ = cmd.Flags().GetBool("labels")
			}
			if cmd.Flags().Changed("duration") {
				settings.Render.Duration, _ = cmd.Flags().GetFloat64("duration")
			}

			opts := &videocompare.RenderOptions{
				InputPaths: [2]string{args[0], args[1]},
				Settings:   settings,
			}
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.Keys, _ = cmd.Flags().GetString("keys")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

			result, err := videocompare.Render(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if opts.DryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "ffmpeg %s\n", strings.Join(result.Args, " "))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
			return nil
		},
	}

	backendsCmd = &cobra.Command{
		Use:   "backends",
		Short: "List the supported mixer backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range videocompare.GetSupportedBackends() {
				desc, crop, err := videocompare.DescribeBackend(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s (pad crop: %t)\n", name, desc, crop)
			}
			return nil
		},
	}
)

func modeFromSettings() types.ViewMode {
	if settings.SideBySide {
		return types.ViewModeSideBySide
	}
	return types.ViewModeSplit
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config.toml file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	modeUsage := fmt.Sprintf("View mode (%s or %s)", types.ViewModeSplit, types.ViewModeSideBySide)

	// Positions command flags
	positionsCmd.Flags().String("mode", string(types.ViewModeSplit), modeUsage)
	positionsCmd.Flags().Int("width", 1280, "Canvas width")
	positionsCmd.Flags().Int("height", 720, "Canvas height")
	positionsCmd.Flags().StringP("keys", "k", "", "Comma separated navigation keys")
	positionsCmd.Flags().StringP("backend", "b", "",
		fmt.Sprintf("Mixer backend (%s)", strings.Join(videocompare.GetSupportedBackends(), ", ")))

	// Render command flags
	renderCmd.Flags().StringP("output", "o", "", "Output video path (default <left>_vs_<right>.mp4)")
	renderCmd.Flags().String("mode", string(types.ViewModeSplit), modeUsage)
	renderCmd.Flags().StringP("keys", "k", "", "Comma separated navigation keys")
	renderCmd.Flags().Bool("dry-run", false, "Print the ffmpeg command instead of running it")
	renderCmd.Flags().Bool("labels", true, "Draw the input file names on the output")
	renderCmd.Flags().Float64("duration", 0, "Seconds to render, 0 for the shorter input")

	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(backendsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
