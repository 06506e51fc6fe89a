package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qbit"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "qbit [subcommand]",
	Short:        "qbit prepares, transforms and measures a single qubit",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("encoding", "polar", "amplitude encoding: polar or cartesian")
	flags.Uint64("seed", 1, "seed for the random source")
	flags.String("basis", "random", "initial state: 0, 1 or random")
	flags.String("gates", "", `gates to apply, e.g. "h x p:pi/2 z"`)
	flags.Float64("tolerance", qbit.DefaultTolerance, "absolute tolerance for invariant checks")

	_ = viper.BindPFlags(flags)

	viper.SetEnvPrefix("QBIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(StateCmd)
	rootCmd.AddCommand(SampleCmd)
}

// loadConfig merges flags and QBIT_* environment variables over the defaults.
func loadConfig() (*qbit.Config, error) {
	config := qbit.NewConfig()

	enc, err := qbit.ParseEncoding(viper.GetString("encoding"))
	if err != nil {
		return nil, err
	}

	config.Encoding = enc
	config.Seed = viper.GetUint64("seed")
	config.Tolerance = viper.GetFloat64("tolerance")

	if viper.IsSet("shots") {
		config.Shots = viper.GetInt("shots")
	}

	if viper.IsSet("workers") {
		config.Workers = viper.GetInt("workers")
	}

	if viper.IsSet("batch-size") {
		config.BatchSize = viper.GetInt("batch-size")
	}

	return config, nil
}

/*
prepare builds the initial qubit for basis ("0", "1" or "random") and runs
gates on it. Random preparation draws from qbit.PrepareStream so that later
collapses, which use batch streams, stay independent of it.
*/
func prepare(config *qbit.Config, basis, gates string) (qbit.Qubit[float64], error) {
	var q qbit.Qubit[float64]

	switch basis {
	case "0":
		q = qbit.Init0[float64](config.Encoding)
	case "1":
		q = qbit.Init1[float64](config.Encoding)
	case "random", "":
		q = qbit.Init[float64](qbit.NewUniformSource(config.Seed, qbit.PrepareStream), config.Encoding)
	default:
		return q, errors.Errorf("unknown basis %q", basis)
	}

	if gates != "" {
		circuit, err := qbit.ParseCircuit(gates)
		if err != nil {
			return q, errors.Wrap(err, "could not parse gates")
		}

		q.Run(circuit)
	}

	return qbit.NewQubit(q.Alpha(), q.Beta(), config.Tolerance)
}
