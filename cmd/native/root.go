package native

import (
	"github.com/accumulo/accumulo-util/cmd/util"
	"github.com/accumulo/accumulo-util/lib/nativebuild"
	"github.com/spf13/cobra"
)

var (

	// BuildNativeCmd represents the build-native command
	BuildNativeCmd = &cobra.Command{
		Use:   "build-native [make-args...]",
		Short: "Build and install the native map library",
		Long: `Build the native map shared library from the source tarball packaged in
the lib directory and install it into lib/native. Additional arguments are
passed through to make. Does nothing if the library is already installed.`,
		Args:         cobra.ArbitraryArgs,
		PreRunE:      setup,
		RunE:         run,
		SilenceUsage: true,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)
}

// setup binds the command flags to viper and configures logging
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	return util.ApplyLogLevel()
}

// run executes the native library build
func run(cmd *cobra.Command, args []string) error {
	lay, err := util.GetLayout()
	if err != nil {
		return err
	}

	return nativebuild.Run(cmd.Context(), nativebuild.Options{
		Fs:       util.GetFs(),
		Runner:   util.GetRunner(),
		Layout:   lay,
		MakeArgs: args,
	})
}
