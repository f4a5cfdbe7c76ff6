package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamed0406/healthmon/internal/stats"
)

func TestConsoleReporter_Format(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Report([]stats.DomainAvailability{
		{Domain: "a.example", Availability: 50, Up: 1, Total: 2},
		{Domain: "b.example", Availability: 0, Up: 0, Total: 1},
	})

	want := "----------------------------------------\n" +
		"a.example has 50% availability percentage\n" +
		"b.example has 0% availability percentage\n" +
		"----------------------------------------\n"
	require.Equal(t, want, buf.String())
}

func TestConsoleReporter_EmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Report(nil)
	require.Equal(t, "----------------------------------------\n----------------------------------------\n", buf.String())
}

type countingReporter struct{ n int }

func (c *countingReporter) Report([]stats.DomainAvailability) { c.n++ }

func TestMulti_FansOutInOrder(t *testing.T) {
	a := &countingReporter{}
	b := &countingReporter{}
	Multi(a, b).Report([]stats.DomainAvailability{{Domain: "a.example"}})
	require.Equal(t, 1, a.n)
	require.Equal(t, 1, b.n)
}
