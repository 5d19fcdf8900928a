package cert

import (
	"github.com/accumulo/accumulo-util/cmd/util"
	"github.com/accumulo/accumulo-util/lib/monitorcert"
	"github.com/spf13/cobra"
)

var (

	// GenMonitorCertCmd represents the gen-monitor-cert command
	GenMonitorCertCmd = &cobra.Command{
		Use:   "gen-monitor-cert",
		Short: "Generate the TLS certificate material for the monitor",
		Long: `Generate a keystore with a fresh self-signed key pair for the monitor's
HTTPS endpoint, export its certificate and import it into a truststore.
Requires JAVA_HOME so the keytool of the JDK can be found. Existing files
are only replaced after an interactive confirmation.`,
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

// run executes the certificate generation
func run(cmd *cobra.Command, _ []string) error {
	lay, err := util.GetLayout()
	if err != nil {
		return err
	}

	return monitorcert.Run(cmd.Context(), monitorcert.Options{
		Fs:       util.GetFs(),
		Runner:   util.GetRunner(),
		Layout:   lay,
		JavaHome: util.GetJavaHome(),
	})
}
