package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/touchicon/internal/icon"
)

func newResizeCmd(a *app) *cobra.Command {
	var (
		source string
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resample an existing logo to an icon",
		Long: `Resample a logo to a square icon with the Lanczos filter and write it
as a best-compression PNG. The source aspect ratio is not preserved.

Supported source formats: JPEG, PNG, GIF, WebP

Examples:
  # Read ../assets/image.png, write icon-180.png
  touchicon resize

  # Explicit paths
  touchicon resize --source logo.jpg --output public/apple-touch-icon.png

  # Remote logo (HTTPS, public hosts only)
  touchicon resize --source https://example.com/logo.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			override(fs, "source", &a.cfg.Source, source)
			override(fs, "output", &a.cfg.Output, output)
			override(fs, "size", &a.cfg.Size, size)
			if err := a.cfg.Validate(); err != nil {
				return a.fail(cmd, err,
					fmt.Sprintf("Error processing image: %v", err),
					"Failed to create iOS icon.")
			}

			resizer, err := icon.NewResizer(icon.ResizerOptions{
				Size:   a.cfg.Size,
				Logger: a.logger.Named("resize"),
			})
			if err != nil {
				return a.fail(cmd, err,
					fmt.Sprintf("Error processing image: %v", err),
					"Failed to create iOS icon.")
			}

			res, err := resizer.Resize(cmd.Context(), a.cfg.Source, a.cfg.Output)
			if err != nil {
				return a.fail(cmd, err,
					fmt.Sprintf("Error processing image: %v", err),
					"Failed to create iOS icon.")
			}

			a.status(cmd, "Original image size: %dx%d", res.Original.X, res.Original.Y)
			a.status(cmd, "Created iOS icon: %s", res.Path)
			a.status(cmd, "New size: %dx%d", res.Resized.X, res.Resized.Y)
			a.status(cmd, "iOS icon created successfully!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "../assets/image.png", "logo file or HTTPS URL to resample")
	cmd.Flags().StringVarP(&output, "output", "o", "icon-180.png", "output PNG path")
	cmd.Flags().IntVar(&size, "size", icon.DefaultSize, "icon edge length in pixels")

	return cmd
}
