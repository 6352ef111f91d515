package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/perrongu/thermaflow"
	"github.com/perrongu/thermaflow/freeze"
)

var (
	runConfigFile  string
	runFreezeTempC float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pipe-network thermal/hydraulic simulation from a JSON config",
	Long: `Reads a NetworkConfig from a JSON file, solves every segment in
sequence and prints the resulting temperature/pressure/heat-loss
profile plus the freeze-risk verdict.

Example:
  thermaflow run --file network.json`,
	RunE: runNetwork,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigFile, "file", "f", "", "Path to NetworkConfig JSON file [required]")
	runCmd.MarkFlagRequired("file")
	runCmd.Flags().Float64Var(&runFreezeTempC, "freeze-temp", freeze.DefaultFreezeTempC, "Freezing isotherm in C used by the freeze analyzer")
}

func runNetwork(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(runConfigFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var cfg thermaflow.NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	result, err := thermaflow.Run(cfg, thermaflow.Options{Sink: sinkFromFlags()})
	if err != nil {
		return fmt.Errorf("running network: %w", err)
	}

	printReport(result)

	analysis, err := thermaflow.AnalyzeFreeze(result, runFreezeTempC)
	if err != nil {
		return fmt.Errorf("analyzing freeze risk: %w", err)
	}
	printFreezeVerdict(analysis)

	return nil
}

func printReport(result thermaflow.NetworkResult) {
	fmt.Println()
	fmt.Println("PIPE NETWORK RESULT")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (m)\tT (C)\tP (bar)\n")
	for i := range result.X {
		fmt.Fprintf(w, "  %.2f\t%.2f\t%.4f\n", result.X[i], result.T[i], result.P[i])
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  T_final:\t%.2f C\n", result.TFinalC)
	fmt.Fprintf(w, "  Total pressure drop:\t%.2f Pa\n", result.DeltaPTotalPa)
	fmt.Fprintf(w, "  Total heat loss:\t%.2f W\n", result.QLossTotalW)
	fmt.Fprintf(w, "  Min temperature:\t%.2f C at x=%.2f m\n", result.MinTempC, result.MinTempPositionM)
	w.Flush()
	fmt.Println()
}

func printFreezeVerdict(a freeze.Analysis) {
	fmt.Println("FREEZE RISK")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Verdict:\t%s\n", a.Verdict)
	fmt.Fprintf(w, "  Severity:\t%s\n", a.Severity)
	fmt.Fprintf(w, "  Min temperature:\t%.2f C at x=%.2f m\n", a.MinTemp, a.MinTempPosition)
	if a.FreezePosition != nil {
		fmt.Fprintf(w, "  Freeze position:\t%.2f m\n", *a.FreezePosition)
	}
	fmt.Fprintf(w, "  Margin to freeze:\t%.2f C\n", a.MarginToFreeze)
	fmt.Fprintf(w, "  Margin to safety (5 C):\t%.2f C\n", a.MarginToSafety)
	w.Flush()
	fmt.Println()
}
