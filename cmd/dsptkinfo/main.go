// Command dsptkinfo prints measured filter responses and compressor curves.
//
// Usage:
//
//	dsptkinfo [flags] [filter-kind ...]
//
// Without arguments it measures every filter kind. By default each filter is
// driven with sines at the -freq frequencies and the gain is printed in dB.
// -signal noise prints the broadband gain for seeded white noise, and
// -signal step prints the first and last output sample of a unit step.
//
// Examples:
//
//	dsptkinfo lowpass highpass
//	dsptkinfo -fc 250 -bw 20 -gain 9 -freq 200,240,250,260,300 parametric
//	dsptkinfo -signal step -fc 10 dcblocker
//	dsptkinfo -curve -threshold -24 -ratio 3 -knee 6
//	dsptkinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsptk/dsp/core"
	"github.com/cwbudde/algo-dsptk/dsp/effects/dynamics"
	"github.com/cwbudde/algo-dsptk/dsp/filter/iir"
	"github.com/cwbudde/algo-dsptk/dsp/signal"
)

var errUsage = errors.New("usage")

type options struct {
	rate      float64
	samples   int
	signal    string
	seed      int64
	freqs     []float64
	fc        float64
	bw        float64
	gain      float64
	list      bool
	curve     bool
	threshold float64
	ratio     float64
	knee      float64
	kinds     []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		if !errors.Is(err, errUsage) {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		}

		return 2
	}

	switch {
	case opts.list:
		for _, k := range iir.Kinds() {
			_, _ = fmt.Fprintln(stdout, k)
		}

		return 0
	case opts.curve:
		if err := printCurve(stdout, opts); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		return 0
	}

	filters := resolveFilters(opts, stderr)
	if len(filters) == 0 {
		_, _ = fmt.Fprintf(stderr, "error: no usable filter kinds\n")
		return 1
	}

	if err := printResponses(stdout, filters, opts); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("dsptkinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.rate, "rate", 48000, "sample rate in Hz")
	fs.IntVar(&opts.samples, "samples", 48000, "test signal length in samples (non-positive uses the default block size)")
	fs.StringVar(&opts.signal, "signal", "sine", "test signal: sine (gain per -freq), noise (broadband gain) or step (first and last output)")
	fs.Int64Var(&opts.seed, "seed", 1, "random seed for the noise signal")
	freqList := fs.String("freq", "100,1000,10000", "comma-separated test frequencies in Hz")
	fs.Float64Var(&opts.fc, "fc", 1000, "filter cutoff or center frequency in Hz")
	fs.Float64Var(&opts.bw, "bw", 100, "filter bandwidth in Hz (band and parametric kinds)")
	fs.Float64Var(&opts.gain, "gain", 6, "equalizer gain in dB (parametric and shelving kinds)")
	fs.BoolVar(&opts.list, "list", false, "list available filter kinds")
	fs.BoolVar(&opts.curve, "curve", false, "print the compressor static curve instead of filter responses")
	fs.Float64Var(&opts.threshold, "threshold", -20, "compressor threshold in dB")
	fs.Float64Var(&opts.ratio, "ratio", 4, "compressor ratio")
	fs.Float64Var(&opts.knee, "knee", 6, "compressor knee width in dB")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: dsptkinfo [flags] [filter-kind ...]\n\n")
		_, _ = fmt.Fprintf(stderr, "Measures filter gain at test frequencies or prints a compressor curve.\n")
		_, _ = fmt.Fprintf(stderr, "Without arguments, measures every filter kind.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  dsptkinfo lowpass highpass\n")
		_, _ = fmt.Fprintf(stderr, "  dsptkinfo -fc 250 -bw 20 -gain 9 parametric\n")
		_, _ = fmt.Fprintf(stderr, "  dsptkinfo -signal step -fc 10 dcblocker\n")
		_, _ = fmt.Fprintf(stderr, "  dsptkinfo -curve -threshold -24 -ratio 3\n")
		_, _ = fmt.Fprintf(stderr, "  dsptkinfo -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}

		return opts, errUsage
	}

	freqs, err := parseFrequencies(*freqList)
	if err != nil {
		return opts, err
	}

	switch opts.signal {
	case "sine", "noise", "step":
	default:
		return opts, fmt.Errorf("unknown test signal %q (want sine, noise or step)", opts.signal)
	}

	opts.freqs = freqs
	opts.kinds = fs.Args()

	return opts, nil
}

func parseFrequencies(list string) ([]float64, error) {
	var freqs []float64

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		f, err := strconv.ParseFloat(field, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid test frequency %q", field)
		}

		freqs = append(freqs, f)
	}

	if len(freqs) == 0 {
		return nil, fmt.Errorf("no test frequencies")
	}

	return freqs, nil
}

func resolveFilters(opts options, stderr io.Writer) []*iir.Filter {
	kinds := iir.Kinds()

	if len(opts.kinds) > 0 {
		kinds = kinds[:0:0]

		for _, name := range opts.kinds {
			k, err := iir.ParseKind(name)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "warning: %v (use -list to see available)\n", err)
				continue
			}

			kinds = append(kinds, k)
		}
	}

	params := iir.Params{
		Frequency:  opts.fc,
		SampleRate: opts.rate,
		Bandwidth:  opts.bw,
		Gain:       core.NewDB(opts.gain),
	}

	var filters []*iir.Filter

	for _, k := range kinds {
		f, err := iir.New(k, params)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "warning: skipping %s: %v\n", k, err)
			continue
		}

		filters = append(filters, f)
	}

	return filters
}

// column is one measurement per filter: the test input and how the filtered
// output is reduced to table cells.
type column struct {
	labels  []string
	input   []float64
	measure func(in, out []float64) []string
}

func gainCell(in, out []float64) []string {
	return []string{fmt.Sprintf("%.2f", signal.GainDB(in, out))}
}

func stepCells(_, out []float64) []string {
	return []string{fmt.Sprintf("%.4f", out[0]), fmt.Sprintf("%.4f", out[len(out)-1])}
}

func buildColumns(opts options) ([]column, int, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.rate), core.WithBlockSize(opts.samples)},
		signal.WithSeed(opts.seed),
	)
	cfg := gen.Config()

	switch opts.signal {
	case "sine":
		cols := make([]column, 0, len(opts.freqs))

		for _, f := range opts.freqs {
			if f >= cfg.Nyquist() {
				return nil, 0, fmt.Errorf("test frequency %g Hz is not below Nyquist", f)
			}

			in, err := gen.Sine(f, 1, cfg.BlockSize)
			if err != nil {
				return nil, 0, err
			}

			label := strconv.FormatFloat(f, 'g', -1, 64) + " Hz"
			cols = append(cols, column{labels: []string{label}, input: in, measure: gainCell})
		}

		return cols, cfg.BlockSize, nil
	case "noise":
		in, err := gen.WhiteNoise(1, cfg.BlockSize)
		if err != nil {
			return nil, 0, err
		}

		return []column{{labels: []string{"noise [dB]"}, input: in, measure: gainCell}}, cfg.BlockSize, nil
	case "step":
		in, err := gen.Step(1, cfg.BlockSize)
		if err != nil {
			return nil, 0, err
		}

		return []column{{labels: []string{"y[0]", "y[end]"}, input: in, measure: stepCells}}, cfg.BlockSize, nil
	default:
		return nil, 0, fmt.Errorf("unknown test signal %q (want sine, noise or step)", opts.signal)
	}
}

func printResponses(w io.Writer, filters []*iir.Filter, opts options) error {
	cols, samples, err := buildColumns(opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Filter", "Params"}
	rule := []string{"------", "------"}

	for _, c := range cols {
		for _, label := range c.labels {
			header = append(header, label)
			rule = append(rule, strings.Repeat("-", len(label)))
		}
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", strings.Join(header, "\t"), strings.Join(rule, "\t")); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	out := make([]float64, samples)

	for _, f := range filters {
		row := []string{f.Kind().String(), describe(f)}

		for _, c := range cols {
			f.Reset()
			copy(out, c.input)
			f.ProcessBlock(out)
			row = append(row, c.measure(c.input, out)...)
		}

		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func describe(f *iir.Filter) string {
	parts := []string{fmt.Sprintf("fc=%g", f.Frequency())}

	if f.Kind().UsesBandwidth() {
		parts = append(parts, fmt.Sprintf("bw=%g", f.Bandwidth()))
	}

	if f.Kind().UsesGain() {
		parts = append(parts, "gain="+f.Gain().String())
	}

	return strings.Join(parts, " ")
}

func printCurve(w io.Writer, opts options) error {
	comp := dynamics.NewCompressor(opts.threshold, opts.ratio, opts.knee, opts.rate, 0.01, 0.1)
	if err := comp.Validate(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "Input [dB]\tOutput [dB]\tReduction [dB]\t\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for level := -60.0; level <= 0; level += 6 {
		outDB := core.AmpToDB(comp.CalculateOutputLevel(core.DBToAmp(level)))

		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t\n", level, outDB, outDB-level); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
