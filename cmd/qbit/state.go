package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qbit"
)

var StateCmd = &cobra.Command{
	Use:          "state",
	Short:        "Print a qubit, its probabilities and its Bloch vector",
	RunE:         runState,
	SilenceUsage: true,
}

func init() {
	StateCmd.Flags().Bool("collapse", false, "also print one collapsed outcome")
	StateCmd.Flags().Bool("dump", false, "dump the internal representation")
}

func runState(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	q, err := prepare(config, viper.GetString("basis"), viper.GetString("gates"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	x, y, z := q.BlochVector()

	fmt.Fprintln(out, q)
	fmt.Fprintln(out, q.Measure())
	fmt.Fprintf(out, "bloch=(%.6f, %.6f, %.6f)\n", x, y, z)

	if collapse, _ := cmd.Flags().GetBool("collapse"); collapse {
		fmt.Fprintln(out, q.Collapse(qbit.NewUniformSource(config.Seed, qbit.BatchStream(0))))
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		fmt.Fprint(out, q.Dump())
	}

	return nil
}
