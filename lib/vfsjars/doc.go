// Package vfsjars seeds the VFS classloader's system context directory in
// HDFS with the jars of the local lib directory.
//
// The package focuses on:
//   - Locating the hadoop client via HADOOP_HOME or the search path
//   - Reading the context directory from accumulo.properties and creating
//     it in HDFS when absent
//   - Moving all local jars into the context directory and raising their
//     replication so a cluster-wide start does not converge on few datanodes
//   - Fetching the handful of jars back out that the local boot classpath
//     needs before it can reach HDFS
//
// All filesystem work in HDFS goes through `hadoop fs`; there is no direct
// HDFS client in this tool.
package vfsjars
