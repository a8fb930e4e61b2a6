// Package config loads render settings from flags, environment variables,
// an optional .env file and an optional config file.
//
// Precedence, highest first: flags, POLYBROT_* environment variables
// (including those set by the .env file), the config file, defaults.
package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/willbeason/polybrot/pkg/escape"
	"github.com/willbeason/polybrot/pkg/palette"
	"github.com/willbeason/polybrot/pkg/polynomial"
	"io/fs"
	"math"
	"strconv"
	"strings"
)

const EnvPrefix = "POLYBROT"

var ErrInvalid = errors.New("invalid configuration")

const (
	keyLeft         = "left"
	keyRight        = "right"
	keyBottom       = "bottom"
	keyTop          = "top"
	keyCoefficients = "coefficients"
	keyColumns      = "columns"
	keyRows         = "rows"
	keyIterations   = "iterations"
	keyBaseR        = "base-r"
	keyBaseG        = "base-g"
	keyBaseB        = "base-b"
	keyModR         = "mod-r"
	keyModG         = "mod-g"
	keyModB         = "mod-b"
	keyInverted     = "inverted"
	keyPrisoner     = "prisoner"
	keyWorkers      = "workers"
	keyOut          = "out"
)

// NoPrisoner disables remapping of cells that never escaped.
const NoPrisoner = -1

// Render describes one image.
type Render struct {
	Left, Right, Bottom, Top float64

	// Coefficients of the iterated polynomial, constant term first.
	Coefficients []float64

	Columns, Rows int
	Iterations    int

	BaseR, BaseG, BaseB int
	ModR, ModG, ModB    int
	Inverted            bool

	// Prisoner replaces the count of cells that never escaped before coloring,
	// unless it is NoPrisoner.
	Prisoner int

	Workers int

	// Out is the output path. Its extension picks the image format.
	Out string
}

// Mandelbrot is the classic view of z^2 + c.
var Mandelbrot = Render{
	Left:         -2.5,
	Right:        0.5,
	Bottom:       -1.5,
	Top:          1.5,
	Coefficients: []float64{0, 0, 1},
	Columns:      600,
	Rows:         600,
	Iterations:   100,
	BaseR:        int(palette.Classic.BaseR),
	BaseG:        int(palette.Classic.BaseG),
	BaseB:        int(palette.Classic.BaseB),
	ModR:         palette.Classic.ModR,
	ModG:         palette.Classic.ModG,
	ModB:         palette.Classic.ModB,
	Prisoner:     NoPrisoner,
}

// Flags registers a flag for every Render field, defaulting to defaults.
func Flags(flags *pflag.FlagSet, defaults Render) {
	flags.Float64(keyLeft, defaults.Left, "left bound of the sampled region")
	flags.Float64(keyRight, defaults.Right, "right bound of the sampled region")
	flags.Float64(keyBottom, defaults.Bottom, "bottom bound of the sampled region")
	flags.Float64(keyTop, defaults.Top, "top bound of the sampled region")

	coeff := make([]string, len(defaults.Coefficients))
	for i, c := range defaults.Coefficients {
		coeff[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	flags.StringSlice(keyCoefficients, coeff, "polynomial coefficients, constant term first")

	flags.Int(keyColumns, defaults.Columns, "samples along the real axis")
	flags.Int(keyRows, defaults.Rows, "samples along the imaginary axis")
	flags.Int(keyIterations, defaults.Iterations, "maximum iterations per sample")

	flags.Int(keyBaseR, defaults.BaseR, "red base value")
	flags.Int(keyBaseG, defaults.BaseG, "green base value")
	flags.Int(keyBaseB, defaults.BaseB, "blue base value")
	flags.Int(keyModR, defaults.ModR, "red change per iteration")
	flags.Int(keyModG, defaults.ModG, "green change per iteration")
	flags.Int(keyModB, defaults.ModB, "blue change per iteration")
	flags.Bool(keyInverted, defaults.Inverted, "invert the palette")
	flags.Int(keyPrisoner, defaults.Prisoner, "count to color non-escaping samples with; -1 leaves them as is")

	flags.Int(keyWorkers, defaults.Workers, "rendering goroutines; 0 uses one per CPU")
	flags.String(keyOut, defaults.Out, "output file, .bmp or .png")
}

// Load merges the sources bound to v and validates the result.
//
// envFile and configFile are optional; a missing envFile is not an error.
func Load(v *viper.Viper, flags *pflag.FlagSet, envFile, configFile string) (Render, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Render{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	err := v.BindPFlags(flags)
	if err != nil {
		return Render{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		err = v.ReadInConfig()
		if err != nil {
			return Render{}, fmt.Errorf("reading %s: %w", configFile, err)
		}
	}

	coeff, err := parseCoefficients(v.GetStringSlice(keyCoefficients))
	if err != nil {
		return Render{}, err
	}

	r := Render{
		Left:         v.GetFloat64(keyLeft),
		Right:        v.GetFloat64(keyRight),
		Bottom:       v.GetFloat64(keyBottom),
		Top:          v.GetFloat64(keyTop),
		Coefficients: coeff,
		Columns:      v.GetInt(keyColumns),
		Rows:         v.GetInt(keyRows),
		Iterations:   v.GetInt(keyIterations),
		BaseR:        v.GetInt(keyBaseR),
		BaseG:        v.GetInt(keyBaseG),
		BaseB:        v.GetInt(keyBaseB),
		ModR:         v.GetInt(keyModR),
		ModG:         v.GetInt(keyModG),
		ModB:         v.GetInt(keyModB),
		Inverted:     v.GetBool(keyInverted),
		Prisoner:     v.GetInt(keyPrisoner),
		Workers:      v.GetInt(keyWorkers),
		Out:          v.GetString(keyOut),
	}

	return r, r.Validate()
}

// parseCoefficients accepts list elements which may themselves hold
// comma- or space-separated numbers, as environment variables do.
func parseCoefficients(raw []string) ([]float64, error) {
	var result []float64
	for _, s := range raw {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '[' || r == ']'
		})
		for _, f := range fields {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: coefficient %q: %w", ErrInvalid, f, err)
			}
			result = append(result, c)
		}
	}
	return result, nil
}

func (r Render) Validate() error {
	err := r.Region().Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	err = r.Grid().Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	_, err = r.Polynomial()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if r.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalid, r.Iterations)
	}

	for _, b := range []int{r.BaseR, r.BaseG, r.BaseB} {
		if b < 0 || b > math.MaxUint8 {
			return fmt.Errorf("%w: base %d outside [0, 255]", ErrInvalid, b)
		}
	}

	if r.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, r.Workers)
	}

	return nil
}

func (r Render) Region() escape.Region {
	return escape.Region{Left: r.Left, Right: r.Right, Bottom: r.Bottom, Top: r.Top}
}

func (r Render) Grid() escape.Grid {
	return escape.Grid{Columns: r.Columns, Rows: r.Rows}
}

func (r Render) Polynomial() (polynomial.Polynomial, error) {
	return polynomial.New(r.Coefficients)
}

func (r Render) Generator() escape.Generator {
	return escape.Generator{Workers: r.Workers}
}

// Palette assumes r has been validated.
func (r Render) Palette() palette.Palette {
	return palette.Palette{
		BaseR: uint8(r.BaseR), BaseG: uint8(r.BaseG), BaseB: uint8(r.BaseB),
		ModR: r.ModR, ModG: r.ModG, ModB: r.ModB,
	}
}
