package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/centurion/internal/core/robot"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the sensor, actuator and control algorithm names a config may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sensors, actuators, controllers := robot.NewDefaultRegistry().Names()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sensors:      %s\n", strings.Join(sensors, ", "))
			fmt.Fprintf(out, "actuators:    %s\n", strings.Join(actuators, ", "))
			fmt.Fprintf(out, "controllers:  %s\n", strings.Join(controllers, ", "))
			return nil
		},
	}
}
