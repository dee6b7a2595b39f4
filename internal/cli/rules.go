package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pcba/pkg/rotation"
)

func (c *CLI) rulesCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "rules <footprint>...",
		Short: "Show which rotation rule applies to footprints",
		Long: `Look up footprints in a rotation rule file and print the rule that
matches each one and the resulting angle offset. Footprints that match no
rule keep their rotation.`,
		Example: `  pcba rules -r rotations.cf Package_TO_SOT_SMD:SOT-23 Resistor_SMD:R_0402_1005Metric`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			table, err := rotation.Load(path)
			if err != nil {
				return err
			}
			logger.Debug("loaded rotation rules", "rules", table.Len(), "source", path)

			w := cmd.OutOrStdout()
			rows := make([][]string, 0, len(args))
			for _, fp := range args {
				rule, ok := table.Match(fp)
				if !ok {
					rows = append(rows, []string{fp, "-", "-", "0"})
					continue
				}
				rows = append(rows, []string{fp, rule.Pattern, strconv.Itoa(rule.Line), strconv.FormatFloat(rule.Delta, 'f', -1, 64)})
			}
			printTable(w, []string{"Footprint", "Rule", "Line", "Delta"}, rows, 2, 3)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "rotations", "r", "", "rotation rule file")
	_ = cmd.MarkFlagRequired("rotations")

	return cmd
}
