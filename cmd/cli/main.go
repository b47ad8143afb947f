package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tunnelstats/adapters/excel"
	"tunnelstats/app"
	"tunnelstats/domain/table"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tunnelstats-cli",
		Short: "Tunnelstats CLI for chainage correlation analysis",
	}

	rootCmd.AddCommand(newReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newReportCmd() *cobra.Command {
	var (
		xAxis, yAxis, zAxis string
		minChainage         float64
		maxChainage         float64
		top                 int
		requireChainage     bool
	)

	cmd := &cobra.Command{
		Use:   "report [spreadsheet]",
		Short: "Run the correlation pipeline and print the summary report",
		Long: `Clean a combined TBM/TSP sheet, filter it to a chainage range and print
the ASCII summary report.

Example: tunnelstats-cli report readings.xlsx --x "penetration rate" --y "p-wave velocity" --min 100 --max 400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewAnalysisService(app.Options{
				RequirePosition: requireChainage,
				TopCorrelations: top,
				Rules:           table.DefaultRules(),
			})

			raw, err := excel.NewDataReader().ReadTable(args[0])
			if err != nil {
				return err
			}

			req := app.AnalysisRequest{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis, TopN: top}
			if cmd.Flags().Changed("min") {
				req.RangeLow = &minChainage
			}
			if cmd.Flags().Changed("max") {
				req.RangeHigh = &maxChainage
			}

			result, err := service.Analyze(raw, req)
			if err != nil {
				return err
			}

			for _, line := range result.ReportLines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xAxis, "x", "", "x-axis column (default: first numeric column)")
	cmd.Flags().StringVar(&yAxis, "y", "", "y-axis column (default: second numeric column)")
	cmd.Flags().StringVar(&zAxis, "z", "", "optional z-axis column")
	cmd.Flags().Float64Var(&minChainage, "min", 0, "lower chainage bound")
	cmd.Flags().Float64Var(&maxChainage, "max", 0, "upper chainage bound")
	cmd.Flags().IntVar(&top, "top", 5, "number of top correlations to report")
	cmd.Flags().BoolVar(&requireChainage, "require-chainage", true, "fail when no chainage column is found")

	return cmd
}
