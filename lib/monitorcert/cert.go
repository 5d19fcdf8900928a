package monitorcert

import (
	"bufio"
	"context"
	"fmt"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/spf13/afero"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// certAlias is the alias the key pair is stored under.
	certAlias = "accumulo-monitor"

	// KeystoreFileName is the keystore created in the conf directory.
	KeystoreFileName = "keystore.jks"

	// TruststoreFileName is the truststore created in the conf directory.
	TruststoreFileName = "truststore.jks"

	// CertFileName is the exported certificate in the conf directory.
	CertFileName = "accumulo-monitor.cer"

	// certValidityDays is how long the generated certificate is valid.
	certValidityDays = "730"
)

// Options bundles the collaborators and inputs of the certificate
// generation.
type Options struct {
	Fs       afero.Fs
	Runner   runner.IRunner
	Layout   layout.Layout
	JavaHome string
	In       io.Reader // confirmation answers, defaults to os.Stdin
	Out      io.Writer // prompts and result lines, defaults to os.Stdout
}

// Run creates a keystore with a fresh self-signed key pair, exports its
// certificate and imports that certificate into a new truststore.
func Run(ctx context.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	keytool, err := findKeytool(opts.Fs, opts.JavaHome)
	if err != nil {
		return err
	}

	keystore := filepath.Join(opts.Layout.ConfDir, KeystoreFileName)
	truststore := filepath.Join(opts.Layout.ConfDir, TruststoreFileName)
	cert := filepath.Join(opts.Layout.ConfDir, CertFileName)

	// Never silently replace existing certificate material.
	answers := bufio.NewReader(in)
	for _, path := range []string{keystore, truststore, cert} {
		if err := confirmRemoval(opts.Fs, answers, out, path); err != nil {
			return err
		}
	}

	keyPass, err := generatePassword(PasswordLength)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to generate keystore password")
	}
	storePass, err := generatePassword(PasswordLength)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to generate truststore password")
	}

	if err := opts.Runner.RunQuiet(ctx, runner.Command{
		Path: keytool,
		Args: []string{
			"-genkeypair", "-alias", certAlias, "-keyalg", "RSA",
			"-keysize", "2048", "-validity", certValidityDays,
			"-keypass", keyPass, "-storepass", keyPass,
			"-keystore", keystore, "-dname", "cn=" + certAlias,
		},
	}); err != nil {
		return common.ExternalError(err, "failed to generate keystore")
	}

	if err := opts.Runner.RunQuiet(ctx, runner.Command{
		Path: keytool,
		Args: []string{
			"-export", "-alias", certAlias, "-storepass", keyPass,
			"-keystore", keystore, "-file", cert,
		},
	}); err != nil {
		return common.ExternalError(err, "failed to export certificate")
	}

	if err := opts.Runner.RunQuiet(ctx, runner.Command{
		Path: keytool,
		Args: []string{
			"-import", "-trustcacerts", "-noprompt", "-alias", certAlias,
			"-file", cert, "-keystore", truststore, "-storepass", storePass,
		},
	}); err != nil {
		return common.ExternalError(err, "failed to build truststore")
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Keystore and truststore generated. Set the following properties in accumulo.properties:")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "monitor.ssl.keyStore=%s\n", keystore)
	_, _ = fmt.Fprintf(out, "monitor.ssl.keyStorePassword=%s\n", keyPass)
	_, _ = fmt.Fprintf(out, "monitor.ssl.trustStore=%s\n", truststore)
	_, _ = fmt.Fprintf(out, "monitor.ssl.trustStorePassword=%s\n", storePass)
	return nil
}

// findKeytool locates the keytool binary of the JDK named by JAVA_HOME.
func findKeytool(fsys afero.Fs, javaHome string) (string, error) {
	if javaHome == "" {
		return "", common.NewError(common.KindEnvironment, "JAVA_HOME is not set, cannot locate keytool")
	}

	keytool := filepath.Join(javaHome, "bin", "keytool")
	exists, err := afero.Exists(fsys, keytool)
	if err != nil {
		return "", common.WrapError(common.KindEnvironment, err, "failed to check for %s", keytool)
	}
	if !exists {
		return "", common.NewError(common.KindEnvironment, "keytool not found at %s, check JAVA_HOME", keytool)
	}
	return keytool, nil
}

// confirmRemoval asks before removing an existing target file. Anything but
// y aborts the operation.
func confirmRemoval(fsys afero.Fs, answers *bufio.Reader, out io.Writer, path string) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to check for %s", path)
	}
	if !exists {
		return nil
	}

	_, _ = fmt.Fprintf(out, "File exists: %s. Remove it? [y/N]: ", path)
	line, err := answers.ReadString('\n')
	if err != nil && line == "" {
		return common.NewError(common.KindAborted, "no answer, not removing %s", path)
	}
	if strings.ToLower(strings.TrimSpace(line)) != "y" {
		return common.NewError(common.KindAborted, "not removing %s, exiting", path)
	}

	if err := fsys.Remove(path); err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to remove %s", path)
	}
	return nil
}
