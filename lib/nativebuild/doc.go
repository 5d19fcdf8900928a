// Package nativebuild compiles and installs the native map shared library.
//
// The packaged source archive (accumulo-native-<version>.tar.gz) is located
// in the lib directory, unpacked into a scratch directory, compiled with
// make, and the resulting libaccumulo.so is installed into lib/native. The
// scratch directory is removed again whether or not the build succeeds.
//
// The operation is idempotent: if lib/native/libaccumulo.so already exists
// it reports so and does nothing.
package nativebuild
