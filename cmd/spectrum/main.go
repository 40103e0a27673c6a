// Command spectrum prints the approximate RGB colour of visible wavelengths
// and can render them as a PNG strip.
//
// Usage:
//
//	spectrum [flags] [wavelength-nm ...]
//
// Without arguments it sweeps -from to -to in -step increments.
//
// Examples:
//
//	spectrum 405 532 650
//	spectrum -gamma 1 -step 25
//	spectrum -step 0.5 -png spectrum.png -height 64
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-plasma/internal/numeric"
	"github.com/cwbudde/algo-plasma/physics/spectral"
	"golang.org/x/image/draw"
)

var errBadSweep = errors.New("invalid sweep")

func main() {
	gamma := flag.Float64("gamma", spectral.DefaultGamma, "gamma exponent applied to ramped channels")
	from := flag.Float64("from", spectral.MinWavelength, "sweep start in nm")
	to := flag.Float64("to", spectral.MaxWavelength, "sweep end in nm")
	step := flag.Float64("step", 10, "sweep step in nm")
	pngOut := flag.String("png", "", "write a spectrum strip to this PNG file")
	height := flag.Int("height", 32, "height of the PNG strip in pixels")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectrum [flags] [wavelength-nm ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the approximate RGB colour of visible wavelengths.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, sweeps -from to -to in -step increments.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spectrum 405 532 650\n")
		fmt.Fprintf(os.Stderr, "  spectrum -gamma 1 -step 25\n")
		fmt.Fprintf(os.Stderr, "  spectrum -step 0.5 -png spectrum.png -height 64\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	spectral.SetLogger(logger)

	lambdas, err := parseWavelengths(flag.Args())
	if err == nil && len(lambdas) == 0 {
		lambdas, err = sweep(*from, *to, *step)
	}
	if err != nil {
		logger.Error("bad arguments", slog.Any("err", err))
		os.Exit(1)
	}

	m := spectral.New(spectral.WithGamma(*gamma))
	if m.Gamma() != *gamma {
		logger.Warn("gamma ignored, using default", slog.Float64("gamma", *gamma), slog.Float64("default", m.Gamma()))
	}

	if err := writeTable(os.Stdout, m, lambdas); err != nil {
		logger.Error("write table", slog.Any("err", err))
		os.Exit(1)
	}

	if *pngOut == "" {
		return
	}

	img, err := renderStrip(m, lambdas, *height)
	if err != nil {
		logger.Error("render strip", slog.Any("err", err))
		os.Exit(1)
	}
	if err := writePNG(*pngOut, img); err != nil {
		logger.Error("write png", slog.String("path", *pngOut), slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("wrote spectrum strip", slog.String("path", *pngOut),
		slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
}

func parseWavelengths(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("wavelength %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// maxSweepSamples bounds the number of wavelengths a sweep may produce.
const maxSweepSamples = 1 << 20

// sweep returns from, from+step, ... up to to (inclusive within step/2).
func sweep(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if !numeric.IsFinite(v) {
			return nil, fmt.Errorf("%w: non-finite bound %v", errBadSweep, v)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be > 0: %v", errBadSweep, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: to (%v) < from (%v)", errBadSweep, to, from)
	}
	if n := numeric.SweepLen(from, to, step); n > maxSweepSamples {
		return nil, fmt.Errorf("%w: %g samples exceeds the limit of %d", errBadSweep, n, maxSweepSamples)
	}

	return numeric.Sweep(from, to, step), nil
}

func writeTable(w io.Writer, m *spectral.Mapper, lambdas []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "nm\tR\tG\tB\thex\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--\t-\t-\t-\t---\n"); err != nil {
		return err
	}

	for _, l := range lambdas {
		c := m.Map(l)
		if _, err := fmt.Fprintf(tw, "%g\t%d\t%d\t%d\t%s\n", l, c.R, c.G, c.B, c.Hex()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// renderStrip maps lambdas in array mode to a one-pixel-high strip and scales
// it to the requested height.
func renderStrip(m *spectral.Mapper, lambdas []float64, height int) (*image.NRGBA, error) {
	if len(lambdas) == 0 {
		return nil, fmt.Errorf("%w: no wavelengths", errBadSweep)
	}
	if height <= 0 {
		return nil, fmt.Errorf("height must be > 0: %d", height)
	}

	colors, err := spectral.ToRGB8(m.MapArray(spectral.Vector(lambdas...)))
	if err != nil {
		return nil, err
	}

	row := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		row.SetNRGBA(x, 0, c.NRGBA())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, len(colors), height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), row, row.Bounds(), draw.Src, nil)
	return dst, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
