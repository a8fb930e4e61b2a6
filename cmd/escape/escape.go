package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willbeason/polybrot/pkg/config"
	"github.com/willbeason/polybrot/pkg/palette"
	"log"
	"os"
	"time"
)

const (
	flagConfig  = "config"
	flagEnvFile = "env-file"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render the escape-time image of P(z) + c",
		Long: `Render the escape-time image of P(z) + c.

Each sample point c is iterated from z = 0 until |z| exceeds 2 or the
iteration limit is reached, and the number of iterations is colored with a
linear palette: channel = |255*inverted - (base - count)*mod|, saturated to
[0, 255].`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	defaults := config.Mandelbrot
	defaults.Out = fmt.Sprintf("out/%s.bmp", time.Now().Format("20060102150405"))
	config.Flags(cmd.Flags(), defaults)

	cmd.Flags().String(flagConfig, "", "optional config file")
	cmd.Flags().String(flagEnvFile, ".env", "optional file of POLYBROT_* environment variables")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	envFile, err := cmd.Flags().GetString(flagEnvFile)
	if err != nil {
		return err
	}

	r, err := config.Load(viper.New(), cmd.Flags(), envFile, configFile)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	p, err := r.Polynomial()
	if err != nil {
		return err
	}

	start := time.Now()
	counts, err := r.Generator().Counts(r.Region(), p, r.Grid(), r.Iterations)
	if err != nil {
		return err
	}
	log.Printf("iterated %v over %dx%d samples in %s", p, r.Columns, r.Rows, time.Since(start))

	if r.Prisoner != config.NoPrisoner {
		counts = palette.RemapPrisoners(counts, r.Iterations, r.Prisoner)
	}

	img, err := palette.MakePixels(counts, r.Palette(), r.Inverted).Image()
	if err != nil {
		return err
	}

	err = img.Save(r.Out)
	if err != nil {
		return err
	}
	log.Printf("saved %s", r.Out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
