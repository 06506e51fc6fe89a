package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qbit"
)

var SampleCmd = &cobra.Command{
	Use:          "sample",
	Short:        "Collapse many copies of a qubit and tally the outcomes",
	RunE:         runSample,
	SilenceUsage: true,
}

func init() {
	defaults := qbit.NewConfig()
	flags := SampleCmd.Flags()

	flags.Int("shots", defaults.Shots, "number of collapses")
	flags.Int("workers", defaults.Workers, "number of sampling workers")
	flags.Int("batch-size", defaults.BatchSize, "shots per job")

	_ = viper.BindPFlags(flags)
}

func runSample(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	q, err := prepare(config, viper.GetString("basis"), viper.GetString("gates"))
	if err != nil {
		return err
	}

	ensemble := qbit.NewEnsemble[float64](config)

	counts, err := ensemble.Sample(cmd.Context(), q, config.Shots)
	if err != nil {
		return errors.Wrap(err, "sampling failed")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, q)
	fmt.Fprintf(out, "expected: %s\n", q.Measure())
	fmt.Fprintf(out, "observed: %s\n", counts.Frequencies())
	fmt.Fprintf(out, "counts: |0⟩=%d |1⟩=%d\n", counts.Zero, counts.One)

	metrics := ensemble.Metrics().ExportMetrics()
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "%s=%v\n", k, metrics[k])
	}

	return nil
}
