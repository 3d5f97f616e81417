package runner

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport renders results as the human-readable run report.
// Durations are printed in nanoseconds with digit grouping so the
// slow days stand out at a glance.
func WriteReport(w io.Writer, results []DayResult) {
	p := message.NewPrinter(language.English)
	for _, res := range results {
		if res.Failed() {
			fmt.Fprintf(w, "day %2d  error: %s\n", res.Day, res.Error)
			continue
		}
		fmt.Fprintf(w, "day %2d  parse %s\n", res.Day, groupedNS(p, res.Parse))
		writePart(p, w, 1, res.Part1)
		writePart(p, w, 2, res.Part2)
	}
}

func writePart(p *message.Printer, w io.Writer, part int, res PartResult) {
	fmt.Fprintf(w, "  part%d %s  %s%s\n",
		part, groupedNS(p, res.Duration), res.Answer, annotation(res))
}

func annotation(res PartResult) string {
	switch res.Status {
	case StatusNew:
		return "  (new)"
	case StatusMismatch:
		return fmt.Sprintf("  MISMATCH (recorded %s)", res.Recorded)
	default:
		return ""
	}
}

func groupedNS(p *message.Printer, d time.Duration) string {
	return p.Sprintf("%dns", d.Nanoseconds())
}
