// Command hrinfo estimates heart rate from raw PPG sample recordings.
//
// Usage:
//
//	hrinfo [flags] [file ...]
//
// Each file holds unsigned IR samples separated by whitespace or commas;
// lines starting with '#' are ignored. With no file, or "-", samples are
// read from stdin. The recording is split into consecutive windows of
// -window samples and each window is analyzed on its own.
//
// Examples:
//
//	hrinfo capture.txt
//	hrinfo -rate 50 -window 250 capture.csv
//	hrinfo -synth-bpm 72 -synth-windows 3
//	hrinfo -plot first.png capture.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-ppg/dsp/core"
	"github.com/cwbudde/algo-ppg/dsp/signal"
	"github.com/cwbudde/algo-ppg/dsp/window"
	"github.com/cwbudde/algo-ppg/measure/heartrate"
	"github.com/cwbudde/algo-ppg/measure/pulse"
	timestats "github.com/cwbudde/algo-ppg/stats/time"
)

// maxLineBytes bounds one input line; recorders often write a whole
// capture as a single comma-separated line.
const maxLineBytes = 64 << 20

type options struct {
	rate         int
	window       int
	minDistance  int
	maxPeaks     int
	synthBPM     float64
	synthWindows int
	synthNoise   float64
	plotPath     string
}

// windowReport is one analyzed window.
type windowReport struct {
	index    int
	start    int
	hr       heartrate.Result
	spectral pulse.Result
	specErr  error
	// confidence is the share of AC energy at the estimated rate, or -1
	// when no rate was found.
	confidence float64
	stats      timestats.Stats
}

func main() {
	var opts options

	flag.IntVar(&opts.rate, "rate", 100, "sample rate in Hz")
	flag.IntVar(&opts.window, "window", 500, "window length in samples")
	flag.IntVar(&opts.minDistance, "min-distance", 8, "minimum peak distance in samples")
	flag.IntVar(&opts.maxPeaks, "max-peaks", 5, "maximum peaks per window")
	flag.Float64Var(&opts.synthBPM, "synth-bpm", 0, "analyze a synthetic pulse at this rate instead of reading input")
	flag.IntVar(&opts.synthWindows, "synth-windows", 1, "number of synthetic windows")
	flag.Float64Var(&opts.synthNoise, "synth-noise", 0, "uniform noise amplitude added to the synthetic pulse")
	flag.StringVar(&opts.plotPath, "plot", "", "write a PNG of the first window with detected peaks")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hrinfo [flags] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Estimates heart rate from raw PPG samples, one window at a time.\n")
		fmt.Fprintf(os.Stderr, "Reads stdin when no file is given.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hrinfo capture.txt\n")
		fmt.Fprintf(os.Stderr, "  hrinfo -rate 50 -window 250 capture.csv\n")
		fmt.Fprintf(os.Stderr, "  hrinfo -synth-bpm 72 -synth-windows 3\n")
	}
	flag.Parse()

	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, files []string, w io.Writer) error {
	est, err := heartrate.New(
		heartrate.WithSampleRate(opts.rate),
		heartrate.WithWindowLength(opts.window),
		heartrate.WithMinPeakDistance(int32(opts.minDistance)),
		heartrate.WithMaxPeaks(opts.maxPeaks),
	)
	if err != nil {
		return err
	}

	samples, err := loadSamples(opts, files)
	if err != nil {
		return err
	}

	reports, err := analyze(est, samples)
	if err != nil {
		return err
	}

	if opts.plotPath != "" {
		if err := plotWindow(opts.plotPath, samples[:opts.window], reports[0]); err != nil {
			return err
		}
	}

	return printReports(w, reports, timestats.Calculate(samples))
}

func loadSamples(opts options, files []string) ([]uint32, error) {
	if opts.synthBPM > 0 {
		g := signal.NewGenerator(
			core.WithSampleRate(float64(opts.rate)),
			core.WithWindowLength(opts.window),
		)

		samples, err := g.Pulse(opts.synthBPM, 100000, 3000, g.Config().WindowLength*max(1, opts.synthWindows))
		if err != nil {
			return nil, err
		}

		if opts.synthNoise > 0 {
			return g.AddNoise(samples, opts.synthNoise)
		}

		return samples, nil
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	var samples []uint32

	for _, name := range files {
		s, err := readFile(name)
		if err != nil {
			return nil, err
		}

		samples = append(samples, s...)
	}

	return samples, nil
}

func readFile(name string) ([]uint32, error) {
	if name == "-" {
		return readSamples(os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := readSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return samples, nil
}

// readSamples parses unsigned integers separated by whitespace or commas.
func readSamples(r io.Reader) ([]uint32, error) {
	var samples []uint32

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})

		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

			samples = append(samples, uint32(v))
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// analyze runs the estimator and the spectral cross-check over every
// complete window. A trailing partial window is ignored.
func analyze(est *heartrate.Estimator, samples []uint32) ([]windowReport, error) {
	cfg := est.Config()
	n := cfg.WindowLength

	if len(samples) < n {
		return nil, fmt.Errorf("need at least %d samples, got %d", n, len(samples))
	}

	var reports []windowReport

	for start := 0; start+n <= len(samples); start += n {
		win := samples[start : start+n]

		hr, err := est.Estimate(win)
		if err != nil {
			return nil, err
		}

		// A failed cross-check leaves the row without a spectral rate.
		spectral, specErr := pulse.DominantRate(win, float64(cfg.SampleRate))

		confidence := -1.0
		if hr.Valid {
			if c, err := pulse.RateConfidence(win, float64(cfg.SampleRate), float64(hr.BPM)); err == nil {
				confidence = c
			}
		}

		reports = append(reports, windowReport{
			index:      len(reports),
			start:      start,
			hr:         hr,
			spectral:   spectral,
			specErr:    specErr,
			confidence: confidence,
			stats:      timestats.Calculate(win),
		})
	}

	return reports, nil
}

func printReports(w io.Writer, reports []windowReport, overall timestats.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tStart\tBPM\tValid\tConf\tPeaks\tThreshold\tSpectral BPM\tDC\tPI [%%]\tSkew\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "------\t-----\t---\t-----\t----\t-----\t---------\t------------\t--\t------\t----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	taper := window.Info(pulse.DefaultConfig().Window)

	var (
		valid      []float64
		resolution float64
	)

	for _, r := range reports {
		bpm := "-"
		if r.hr.Valid {
			bpm = strconv.Itoa(int(r.hr.BPM))
			valid = append(valid, float64(r.hr.BPM))
		}

		conf := "-"
		if r.confidence >= 0 {
			conf = fmt.Sprintf("%.2f", r.confidence)
		}

		spectral := "-"
		if r.specErr == nil {
			spectral = fmt.Sprintf("%.1f", r.spectral.BPM)
			resolution = r.spectral.ResolutionBPM
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%v\t%s\t%d\t%d\t%s\t%.0f\t%.2f\t%.2f\n",
			r.index,
			r.start,
			bpm,
			r.hr.Valid,
			conf,
			len(r.hr.Peaks),
			r.hr.Threshold,
			spectral,
			r.stats.DC,
			r.stats.PerfusionIndex,
			r.stats.Skewness,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	rate := "-"
	switch len(valid) {
	case 0:
	case 1:
		rate = fmt.Sprintf("%.1f", valid[0])
	default:
		mean, std := stat.MeanStdDev(valid, nil)
		rate = fmt.Sprintf("%.1f (sd %.1f)", mean, std)
	}

	if _, err := fmt.Fprintf(w, "\n%d/%d windows valid, mean %s BPM, %d samples, DC %.0f, PI %.2f%%\n",
		len(valid), len(reports), rate, overall.Length, overall.DC, overall.PerfusionIndex); err != nil {
		return err
	}

	if resolution == 0 {
		return nil
	}

	_, err := fmt.Fprintf(w, "spectral taper %s (ENBW %.2f bins, sidelobes %.1f dB), resolution %.1f BPM\n",
		taper.Name, taper.ENBW, taper.HighestSidelobe, resolution)

	return err
}
