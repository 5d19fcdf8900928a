package zoo

import (
	"github.com/accumulo/accumulo-util/cmd/util"
	"github.com/accumulo/accumulo-util/lib/zoodump"
	"github.com/spf13/cobra"
)

var (

	// DumpZooCmd represents the dump-zoo command
	DumpZooCmd = &cobra.Command{
		Use:   "dump-zoo [args...]",
		Short: "Dump the ZooKeeper state of the instance",
		Long: `Run the packaged DumpZookeeper diagnostic through the accumulo launcher.
All arguments, including flags, are passed to the diagnostic verbatim and
its exit status becomes the exit status of this command.`,
		// Flags belong to the diagnostic, not to this tool.
		DisableFlagParsing: true,
		RunE:               run,
		SilenceUsage:       true,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)
}

// run hands the command line to the diagnostic
func run(cmd *cobra.Command, args []string) error {
	lay, err := util.GetLayout()
	if err != nil {
		return err
	}

	return zoodump.Run(cmd.Context(), zoodump.Options{
		Fs:     util.GetFs(),
		Runner: util.GetRunner(),
		Layout: lay,
		Args:   args,
	})
}
