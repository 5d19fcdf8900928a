package util

import (
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupLayoutFlags adds the installation layout flags to a command
func SetupLayoutFlags(cmd *cobra.Command) {
	key := "home-dir"
	cmd.PersistentFlags().String(key, "", WrapString("Path of the Accumulo installation. Defaults to the parent directory of this executable, ACCUMULO_HOME overrides"))

	key = "conf-dir"
	cmd.PersistentFlags().String(key, "", WrapString("Path of the configuration directory. Defaults to <home-dir>/conf, ACCUMULO_CONF_DIR overrides"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("The level at which logs will be output (debug, info, warning, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("accumulo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// conventional variable names that do not follow the prefix scheme
	_ = viper.BindEnv("home-dir", "ACCUMULO_HOME")
	_ = viper.BindEnv("java-home", "JAVA_HOME")
	_ = viper.BindEnv("hadoop-home", "HADOOP_HOME")
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// ApplyLogLevel configures the logger from the bound log-level value
func ApplyLogLevel() error {
	value := viper.GetString("log-level")
	if value == "" {
		return nil
	}

	level, err := common.ParseLogLevel(value)
	if err != nil {
		return err
	}
	common.SetLogLevel(level)
	return nil
}

// GetLayout resolves the installation layout from the bound configuration.
// The accumulo-env file of the installation is loaded so that variables like
// JAVA_HOME defined there become visible.
func GetLayout() (layout.Layout, error) {
	lay, err := layout.Resolve(viper.GetString("home-dir"), viper.GetString("conf-dir"))
	if err != nil {
		return layout.Layout{}, err
	}

	_ = godotenv.Load(lay.EnvFilePath())
	return lay, nil
}

// GetFs returns the filesystem the operations work on
func GetFs() afero.Fs {
	return afero.NewOsFs()
}

// GetRunner returns the runner the operations execute external commands with
func GetRunner() runner.IRunner {
	return runner.NewExecRunner()
}

// GetJavaHome returns the configured JDK home directory
func GetJavaHome() string {
	return viper.GetString("java-home")
}

// GetHadoopHome returns the configured Hadoop home directory
func GetHadoopHome() string {
	return viper.GetString("hadoop-home")
}
