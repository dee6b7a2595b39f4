package pipeline

import (
	"cmp"
	"slices"

	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/refdes"
)

// ReportRow is one component in the type report.
type ReportRow struct {
	Reference  string
	Layer      component.Layer
	Family     refdes.Family
	Value      string
	PartNumber string
}

// FamilyCount is the number of components drawn as one family.
type FamilyCount struct {
	Family refdes.Family
	Count  int
}

// Report summarizes the components of a run by type.
type Report struct {
	Rows   []ReportRow
	Counts []FamilyCount
}

// NewReport builds the type report for records. Rows keep input order;
// counts are sorted by count, largest first, then by family name.
func NewReport(records []*component.Record) Report {
	rep := Report{Rows: make([]ReportRow, 0, len(records))}
	counts := make(map[refdes.Family]int)
	for _, r := range records {
		rep.Rows = append(rep.Rows, ReportRow{
			Reference:  r.Ref,
			Layer:      r.Layer,
			Family:     r.Family,
			Value:      r.Value,
			PartNumber: r.PartNumber,
		})
		counts[r.Family]++
	}

	for f, n := range counts {
		rep.Counts = append(rep.Counts, FamilyCount{Family: f, Count: n})
	}
	slices.SortFunc(rep.Counts, func(a, b FamilyCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Family.String(), b.Family.String())
	})
	return rep
}
