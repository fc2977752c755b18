package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/runway-sim/runway-sim/sim"
)

// Output format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var validFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
	"":         true, // empty defaults to text
}

// IsValidFormat returns true if the given name is a recognized output format.
func IsValidFormat(name string) bool {
	return validFormats[name]
}

// Write renders the report in the named format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatText, "":
		return r.WriteText(w)
	default:
		return fmt.Errorf("unknown output format %q; valid: text, json, yaml", format)
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText writes a human-readable table per configuration.
func (r *Report) WriteText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "=== Runway Study ===\n")
	p.Fprintf(tw, "Seed %d, %d years x %d days, base intensity %.1f, growth %.2f%%\n",
		r.Seed, r.Years, r.DaysPerYear, r.BaseIntensity, r.Growth*100)

	for _, c := range r.Configurations {
		p.Fprintf(tw, "\n--- %s (%d runway(s), %s) ---\n", c.Name, c.Runways, c.Precedence)
		p.Fprintf(tw, "year\tintensity\tflights/day\tmean wait (s)\tno-data days\twait frac\tmean overrun (s)\tp50\tp95\tρ\tP(wait) M/G/c\t\n")
		for i, y := range c.Years {
			p.Fprintf(tw, "%d\t%.0f\t%.1f\t%s\t%d\t%.3f\t%.0f\t%.0f\t%.0f\t",
				y.Year, y.Intensity, y.MeanFlights, formatWait(p, y.MeanWait), y.NoDataDays,
				y.MeanWaitFraction, y.MeanOverrun, y.OverrunP50, y.OverrunP95)
			if i < len(c.Reference) {
				ref := c.Reference[i]
				p.Fprintf(tw, "%.3f\t%.3f\t\n", ref.Utilization, ref.ProbWait)
			} else {
				p.Fprintf(tw, "-\t-\t\n")
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		for _, h := range c.WaitHistograms {
			writeHistogram(p, w, h)
		}
		for _, h := range c.OverrunHistograms {
			writeHistogram(p, w, h)
		}
	}
	return tw.Flush()
}

func formatWait(p *message.Printer, m sim.WaitMean) string {
	if !m.Valid {
		return "n/a"
	}
	return p.Sprintf("%.1f", m.Seconds)
}

func writeHistogram(p *message.Printer, w io.Writer, h Histogram) {
	p.Fprintf(w, "\n%s histogram, year %d\n", h.Label, h.Year)
	for i, c := range h.Counts {
		// the last bin also holds the maximum
		closing := ")"
		if i == len(h.Counts)-1 {
			closing = "]"
		}
		p.Fprintf(w, "  [%10.1f, %10.1f%s  %5.0f\n", h.Edges[i], h.Edges[i+1], closing, c)
	}
}
