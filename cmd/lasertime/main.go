package main

import (
	"io"
	"log"
	"os"

	"github.com/mastercactapus/lasertime/gcode"
	"github.com/mastercactapus/lasertime/report"
	"github.com/mastercactapus/lasertime/vm"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lasertime <file.gcode>",
		Short:        "Report laser-on length, time and switch count of a G-code program",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.PersistentFlags().Bool("count-every-on", false, "Count every M3 as a switch, even when the laser is already on.")
	cmd.Flags().Bool("json", false, "Print the report as JSON.")
	cmd.Flags().Bool("trace", false, "Log every command as it is executed.")

	cmd.AddCommand(newServeCmd())
	return cmd
}

func main() {
	log.SetFlags(log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func machineOptions(cmd *cobra.Command) []vm.Option {
	every, _ := cmd.Flags().GetBool("count-every-on")
	opts := []vm.Option{vm.WithCountEveryOn(every)}
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		opts = append(opts, vm.WithTrace(func(c gcode.Command) {
			log.Printf("%d: %s", c.Line, c)
		}))
	}
	return opts
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func run(cmd *cobra.Command, args []string) error {
	f, err := open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := vm.Analyze(f, machineOptions(cmd)...)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return report.WriteJSON(cmd.OutOrStdout(), t)
	}
	return report.Write(cmd.OutOrStdout(), t)
}
