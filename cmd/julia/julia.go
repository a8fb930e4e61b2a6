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

// defaults shows the filled Julia set of z^2 - 0.75.
var defaults = config.Render{
	Left:         -1.6,
	Right:        1.6,
	Bottom:       -0.9,
	Top:          0.9,
	Coefficients: []float64{-0.75, 0, 1},
	Columns:      1600,
	Rows:         900,
	Iterations:   12,
	Prisoner:     config.NoPrisoner,
}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render where P(z) sends each sample point",
		Long: `Render where P(z) sends each sample point.

Each sample point is used as the starting value and P is applied exactly
--iterations times. Points whose final value is small are bright; points that
overflowed are black.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	d := defaults
	d.Out = fmt.Sprintf("out/%s.png", time.Now().Format("20060102150405"))
	config.Flags(cmd.Flags(), d)

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
	values, err := r.Generator().Values(r.Region(), p, r.Grid(), r.Iterations)
	if err != nil {
		return err
	}
	log.Printf("applied %v %d times over %dx%d samples in %s", p, r.Iterations, r.Columns, r.Rows, time.Since(start))

	img, err := palette.Brightness(values, palette.LightBlue).Image()
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
