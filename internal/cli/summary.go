package cli

import (
	"io"
	"strconv"

	"github.com/matzehuels/pcba/pkg/pipeline"
)

// printSummary prints the written files, the BOM and the family counts of
// a finished run. With parts set it also lists every component.
func printSummary(w io.Writer, res *pipeline.Result, parts bool) {
	printSuccess(w, "Wrote assembly files")
	printFile(w, res.Outputs.BOM)
	printFile(w, res.Outputs.CPL)
	if res.Outputs.SVG != "" {
		printFile(w, res.Outputs.SVG)
	}
	printNewline(w)

	printTitle(w, "Bill of materials")
	rows := make([][]string, 0, len(res.BOM))
	for _, l := range res.BOM {
		rows = append(rows, []string{l.Value, l.Designator(), l.Footprint, l.PartNumber, strconv.Itoa(l.Quantity())})
	}
	printTable(w, []string{"Component", "Designator", "Footprint", "JLCPCB", "Qty"}, rows, 4)

	printTitle(w, "Component types")
	rows = rows[:0]
	for _, c := range res.Report.Counts {
		rows = append(rows, []string{c.Family.String(), strconv.Itoa(c.Count)})
	}
	printTable(w, []string{"Type", "Count"}, rows, 1)

	if parts {
		printTitle(w, "Components")
		rows = make([][]string, 0, len(res.Report.Rows))
		for _, r := range res.Report.Rows {
			rows = append(rows, []string{r.Reference, r.Layer.String(), r.Family.String(), r.Value, r.PartNumber})
		}
		printTable(w, []string{"Reference", "Layer", "Type", "Value", "LCSC"}, rows)
	}

	printKeyValue(w, "run", res.RunID)
	printKeyValue(w, "rules", strconv.Itoa(res.Stats.Rules))
	if res.Stats.Unmatched > 0 {
		printWarning(w, "%d of %d placements have no rotation rule", res.Stats.Unmatched, len(res.Placements))
	}
}
