package jars

import (
	"github.com/accumulo/accumulo-util/cmd/util"
	"github.com/accumulo/accumulo-util/lib/vfsjars"
	"github.com/spf13/cobra"
)

var (

	// LoadJarsCmd represents the load-jars-hdfs command
	LoadJarsCmd = &cobra.Command{
		Use:   "load-jars-hdfs",
		Short: "Upload the local jars to the HDFS classloader directory",
		Long: `Move all jars of the lib directory into the system context directory of
the VFS classloader in HDFS, raise their replication and fetch the jars
back out that the local boot classpath needs. The context directory is
read from accumulo.properties, the hadoop command is located via
HADOOP_HOME or PATH.`,
		Args:         cobra.NoArgs,
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

// run executes the jar upload
func run(cmd *cobra.Command, _ []string) error {
	lay, err := util.GetLayout()
	if err != nil {
		return err
	}

	return vfsjars.Run(cmd.Context(), vfsjars.Options{
		Fs:         util.GetFs(),
		Runner:     util.GetRunner(),
		Layout:     lay,
		HadoopHome: util.GetHadoopHome(),
	})
}
