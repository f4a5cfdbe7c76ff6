package stats

import (
	"math"
	"sort"
	"sync"

	"github.com/hamed0406/healthmon/internal/endpoint"
)

// Domain accumulates up/total counters for one domain across the whole
// run. Each Domain owns its own mutex so writers to different domains
// never contend; counters are never reset between cycles.
type Domain struct {
	mu       sync.Mutex
	domain   string
	numUp    int
	numTotal int
}

func (d *Domain) Name() string { return d.domain }

// Record applies exactly one check result: total always increments, up
// only on success.
func (d *Domain) Record(up bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if up {
		d.numUp++
	}
	d.numTotal++
}

// Availability is the rounded up/total percentage; 0 before any result
// has been recorded (display convention, not "healthy").
func (d *Domain) Availability() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.numTotal == 0 {
		return 0
	}
	return int(math.Round(100 * float64(d.numUp) / float64(d.numTotal)))
}

// Counts returns the raw counters.
func (d *Domain) Counts() (up, total int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.numUp, d.numTotal
}

// DomainAvailability is one row of a reporting snapshot.
type DomainAvailability struct {
	Domain       string `json:"domain"`
	Availability int    `json:"availability_pct"`
	Up           int    `json:"num_up"`
	Total        int    `json:"num_total"`
}

// Registry maps domains to their aggregates. It is built once from the
// endpoint list before the check loop starts, so every endpoint's domain
// has an aggregate before any check runs; after that the map itself is
// read-only and needs no lock of its own.
type Registry struct {
	domains map[string]*Domain
}

func NewRegistry(eps []endpoint.Endpoint) *Registry {
	r := &Registry{domains: make(map[string]*Domain, len(eps))}
	for _, ep := range eps {
		if _, ok := r.domains[ep.Domain]; !ok {
			r.domains[ep.Domain] = &Domain{domain: ep.Domain}
		}
	}
	return r
}

func (r *Registry) Get(domain string) (*Domain, bool) {
	d, ok := r.domains[domain]
	return d, ok
}

func (r *Registry) Len() int { return len(r.domains) }

// Snapshot returns every registered domain (checked this cycle or not,
// since counters are cumulative) sorted by name.
func (r *Registry) Snapshot() []DomainAvailability {
	out := make([]DomainAvailability, 0, len(r.domains))
	for _, d := range r.domains {
		up, total := d.Counts()
		out = append(out, DomainAvailability{
			Domain:       d.Name(),
			Availability: d.Availability(),
			Up:           up,
			Total:        total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}
