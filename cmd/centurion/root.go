package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CENTURION"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "centurion",
		Short:         "Discrete-time simulator for beam-sensing robot swarms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newComponentsCmd(), newInspectCmd())
	return root
}

// bindFlags lets CENTURION_<FLAG> environment variables stand in for flags
// that were not given on the command line.
func bindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}
