package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// RadiusEntry is one constellation's angular size.
type RadiusEntry struct {
	Code    string
	Name    string
	Stars   int
	Radius  float64 // degrees from center to farthest member
	Variant string
}

// RadiusReport summarizes how much sky each figure spans, used to
// sanity-check frame sizing before a chart ships.
type RadiusReport struct {
	Entries []RadiusEntry
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
}

// BuildRadiusReport sizes every figure without assembling full
// records. Figures that cannot build a frame are left out.
func (p *Pipeline) BuildRadiusReport() RadiusReport {
	var report RadiusReport
	for _, fig := range p.Figures {
		rec, fr, err := p.Assembler.Record(fig, p.Catalog)
		if err != nil {
			p.Log.Warn("excluding constellation from radius report",
				"constellation", fig.Code, "error", err)
			continue
		}
		report.Entries = append(report.Entries, RadiusEntry{
			Code:    fig.Code,
			Name:    fig.Name,
			Stars:   len(rec.Stars),
			Radius:  fr.MaxRadius,
			Variant: rec.Projection,
		})
	}

	if len(report.Entries) == 0 {
		return report
	}

	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Radius < report.Entries[j].Radius
	})

	var sum float64
	for _, e := range report.Entries {
		sum += e.Radius
	}
	n := len(report.Entries)
	report.Min = report.Entries[0].Radius
	report.Max = report.Entries[n-1].Radius
	report.Mean = sum / float64(n)
	if n%2 == 1 {
		report.Median = report.Entries[n/2].Radius
	} else {
		report.Median = (report.Entries[n/2-1].Radius + report.Entries[n/2].Radius) / 2
	}
	return report
}

// String formats the report with summary statistics and the ten
// smallest and largest figures. Padded radius is what background
// selection will actually search.
func (r RadiusReport) String() string {
	if len(r.Entries) == 0 {
		return "no constellations sized\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Constellation angular radii (%d figures)\n", len(r.Entries))
	fmt.Fprintf(&sb, "  min %.2f  max %.2f  mean %.2f  median %.2f degrees\n\n",
		r.Min, r.Max, r.Mean, r.Median)

	writeTable := func(title string, entries []RadiusEntry) {
		sb.WriteString(title + "\n")
		fmt.Fprintf(&sb, "  %-4s %-22s %5s %8s %8s  %s\n",
			"code", "name", "stars", "radius", "padded", "projection")
		for _, e := range entries {
			fmt.Fprintf(&sb, "  %-4s %-22s %5d %8.2f %8.2f  %s\n",
				e.Code, e.Name, e.Stars, e.Radius, 2*e.Radius, e.Variant)
		}
		sb.WriteString("\n")
	}

	k := 10
	if len(r.Entries) < k {
		k = len(r.Entries)
	}
	writeTable("Smallest figures:", r.Entries[:k])

	largest := make([]RadiusEntry, k)
	copy(largest, r.Entries[len(r.Entries)-k:])
	for i, j := 0, len(largest)-1; i < j; i, j = i+1, j-1 {
		largest[i], largest[j] = largest[j], largest[i]
	}
	writeTable("Largest figures:", largest)

	return sb.String()
}
