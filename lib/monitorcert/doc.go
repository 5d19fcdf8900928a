// Package monitorcert generates the self-signed certificate material for
// the monitor's HTTPS endpoint.
//
// The package focuses on:
//   - Generating random keystore and truststore passwords
//   - Driving keytool (from the JDK named by JAVA_HOME) to create the
//     keystore, export the certificate and import it into a truststore
//   - Guarding existing files behind an interactive confirmation
//
// On success the user is told which files were written and which property
// values to place in accumulo.properties.
package monitorcert
