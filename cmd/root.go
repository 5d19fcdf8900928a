package cmd

import (
	"fmt"
	"github.com/accumulo/accumulo-util/cmd/cert"
	"github.com/accumulo/accumulo-util/cmd/jars"
	"github.com/accumulo/accumulo-util/cmd/native"
	"github.com/accumulo/accumulo-util/cmd/util"
	"github.com/accumulo/accumulo-util/cmd/zoo"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "accumulo-util",
		Short: "administrative helper for an Accumulo installation",
		Long: fmt.Sprintf(`accumulo-util (v%s)

Administrative helper for an Accumulo installation. It builds the native
map library, generates the TLS material for the monitor, seeds the HDFS
classloader directory with the local jars and dumps the ZooKeeper state.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of accumulo-util",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("accumulo-util v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(native.BuildNativeCmd)
	RootCmd.AddCommand(cert.GenMonitorCertCmd)
	RootCmd.AddCommand(jars.LoadJarsCmd)
	RootCmd.AddCommand(zoo.DumpZooCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupLayoutFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(common.ExitStatus(err))
	}
}
