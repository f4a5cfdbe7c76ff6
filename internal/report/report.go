package report

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/stats"
)

// Reporter receives one availability snapshot per cycle. It only
// consumes the snapshot; formatting is up to the implementation.
type Reporter interface {
	Report(snapshot []stats.DomainAvailability)
}

const divider = "----------------------------------------"

// ConsoleReporter writes the per-domain availability lines between
// divider rules.
type ConsoleReporter struct {
	W io.Writer
}

func NewConsole(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{W: w}
}

func (c *ConsoleReporter) Report(snapshot []stats.DomainAvailability) {
	fmt.Fprintln(c.W, divider)
	for _, d := range snapshot {
		fmt.Fprintf(c.W, "%s has %d%% availability percentage\n", d.Domain, d.Availability)
	}
	fmt.Fprintln(c.W, divider)
}

// LogReporter mirrors the snapshot into structured log events.
type LogReporter struct {
	Log *zap.Logger
}

func (l *LogReporter) Report(snapshot []stats.DomainAvailability) {
	for _, d := range snapshot {
		l.Log.Info("domain_availability",
			zap.String("domain", d.Domain),
			zap.Int("availability_pct", d.Availability),
			zap.Int("num_up", d.Up),
			zap.Int("num_total", d.Total),
		)
	}
}

type multiReporter []Reporter

// Multi fans one snapshot out to several reporters in order.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

func (m multiReporter) Report(snapshot []stats.DomainAvailability) {
	for _, r := range m {
		r.Report(snapshot)
	}
}
