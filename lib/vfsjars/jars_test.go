package vfsjars

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/accumulo/accumulo-util/lib/runner/runnertest"
	"github.com/spf13/afero"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testHadoopHome = "/opt/hadoop"
	testRemoteDir  = "hdfs://namenode:8020/accumulo/classpath"
)

// newFixture creates an in-memory installation with a hadoop binary, a
// configured classloader directory, two tservers and four local jars.
func newFixture(t *testing.T) (afero.Fs, layout.Layout) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	lay := layout.Layout{HomeDir: "/opt/accumulo", ConfDir: "/opt/accumulo/conf"}

	hadoop := filepath.Join(testHadoopHome, "bin", "hadoop")
	if err := afero.WriteFile(fsys, hadoop, []byte{}, 0755); err != nil {
		t.Fatalf("failed to create hadoop: %v", err)
	}

	site := "general.vfs.context.classpath.system=" + testRemoteDir + "/.*.jar\n"
	if err := afero.WriteFile(fsys, lay.SitePropertiesPath(), []byte(site), 0644); err != nil {
		t.Fatalf("failed to write site file: %v", err)
	}
	if err := afero.WriteFile(fsys, lay.TServersPath(), []byte("host-1\nhost-2\n"), 0644); err != nil {
		t.Fatalf("failed to write tservers: %v", err)
	}

	for _, name := range []string{"accumulo-core.jar", "accumulo-start.jar", "commons-vfs2.jar", "slf4j-api.jar"} {
		if err := afero.WriteFile(fsys, filepath.Join(lay.LibDir(), name), []byte("jar"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return fsys, lay
}

// fsOps returns the `hadoop fs` operation of every recorded call, in order.
func fsOps(t *testing.T, rec *runnertest.Recorder) []string {
	t.Helper()

	var ops []string
	for i, call := range rec.Calls {
		if len(call.Cmd.Args) < 2 || call.Cmd.Args[0] != "fs" {
			t.Fatalf("call %d is not a hadoop fs command: %v", i, call.Cmd.Args)
		}
		ops = append(ops, call.Cmd.Args[1])
	}
	return ops
}

// TestJarsNoHadoop tests the failure when no hadoop client can be found.
func TestJarsNoHadoop(t *testing.T) {
	fsys, lay := newFixture(t)

	err := Run(context.Background(), Options{Fs: fsys, Runner: &runnertest.Recorder{}, Layout: lay})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "hadoop") {
		t.Errorf("unexpected message: %v", err)
	}
	if status := common.ExitStatus(err); status != common.ExitEnvironment {
		t.Errorf("expected exit status %d, got %d", common.ExitEnvironment, status)
	}
}

// TestJarsHadoopFromPath tests the fallback to the search path when
// HADOOP_HOME is unset.
func TestJarsHadoopFromPath(t *testing.T) {
	fsys, lay := newFixture(t)
	rec := &runnertest.Recorder{Paths: map[string]string{"hadoop": "/usr/bin/hadoop"}}

	err := Run(context.Background(), Options{Fs: fsys, Runner: rec, Layout: lay, Out: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Calls[0].Cmd.Path != "/usr/bin/hadoop" {
		t.Errorf("expected the hadoop from PATH, got %q", rec.Calls[0].Cmd.Path)
	}
}

// TestJarsClasspathUnset tests the failure when accumulo.properties does
// not configure the classloader directory.
func TestJarsClasspathUnset(t *testing.T) {
	fsys, lay := newFixture(t)
	if err := afero.WriteFile(fsys, lay.SitePropertiesPath(), []byte("instance.name=test\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite site file: %v", err)
	}

	err := Run(context.Background(), Options{
		Fs: fsys, Runner: &runnertest.Recorder{}, Layout: lay, HadoopHome: testHadoopHome,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HDFS classloader") {
		t.Errorf("unexpected message: %v", err)
	}
	if status := common.ExitStatus(err); status != common.ExitFailure {
		t.Errorf("expected exit status %d, got %d", common.ExitFailure, status)
	}
}

// TestJarsMissingServerList tests the failure when the tservers file is
// absent.
func TestJarsMissingServerList(t *testing.T) {
	fsys, lay := newFixture(t)
	if err := fsys.Remove(lay.TServersPath()); err != nil {
		t.Fatalf("failed to remove tservers: %v", err)
	}

	err := Run(context.Background(), Options{
		Fs: fsys, Runner: &runnertest.Recorder{}, Layout: lay, HadoopHome: testHadoopHome,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "server list") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestJarsNoJars tests the failure when the lib directory holds no jars.
func TestJarsNoJars(t *testing.T) {
	fsys, lay := newFixture(t)
	jars, _ := afero.Glob(fsys, filepath.Join(lay.LibDir(), "*.jar"))
	for _, jar := range jars {
		if err := fsys.Remove(jar); err != nil {
			t.Fatalf("failed to remove %s: %v", jar, err)
		}
	}

	err := Run(context.Background(), Options{
		Fs: fsys, Runner: &runnertest.Recorder{}, Layout: lay, HadoopHome: testHadoopHome,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no jar files") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestJarsUploadSequence tests the full command sequence against a missing
// remote directory.
func TestJarsUploadSequence(t *testing.T) {
	fsys, lay := newFixture(t)

	rec := &runnertest.Recorder{}
	rec.Handler = func(cmd runner.Command) error {
		// The probe fails, the context directory does not exist yet.
		if cmd.Args[1] == "-ls" {
			return errors.New("ls: no such file or directory")
		}
		return nil
	}

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Fs: fsys, Runner: rec, Layout: lay, HadoopHome: testHadoopHome, Out: &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"-ls", "-mkdir", "-moveFromLocal", "-setrep",
		"-copyToLocal", "-rm", "-copyToLocal", "-rm", "-copyToLocal", "-rm",
	}
	ops := fsOps(t, rec)
	if len(ops) != len(expected) {
		t.Fatalf("expected %d commands, got %d: %v", len(expected), len(ops), ops)
	}
	for i := range expected {
		if ops[i] != expected[i] {
			t.Errorf("command %d: expected %s, got %s", i, expected[i], ops[i])
		}
	}

	hadoop := filepath.Join(testHadoopHome, "bin", "hadoop")
	for i, call := range rec.Calls {
		if call.Cmd.Path != hadoop {
			t.Errorf("call %d: expected %s, got %s", i, hadoop, call.Cmd.Path)
		}
		if !call.Quiet {
			t.Errorf("call %d: expected quiet execution", i)
		}
	}

	mkdir := rec.Calls[1].Cmd.Args
	if mkdir[2] != "-p" || mkdir[3] != testRemoteDir {
		t.Errorf("unexpected mkdir arguments: %v", mkdir)
	}

	move := rec.Calls[2].Cmd.Args
	if len(move) != 2+4+1 {
		t.Fatalf("expected four jars and a destination, got %v", move)
	}
	if move[len(move)-1] != testRemoteDir {
		t.Errorf("expected destination %s, got %v", testRemoteDir, move)
	}
	for _, jar := range move[2 : len(move)-1] {
		if filepath.Dir(jar) != lay.LibDir() {
			t.Errorf("expected a jar from %s, got %s", lay.LibDir(), jar)
		}
	}

	// Two tservers stay below the first fifty, the default replication is
	// three.
	setrep := rec.Calls[3].Cmd.Args
	if setrep[2] != "-R" || setrep[3] != "3" || setrep[4] != testRemoteDir {
		t.Errorf("unexpected setrep arguments: %v", setrep)
	}

	borrow := rec.Calls[4].Cmd.Args
	if borrow[2] != testRemoteDir+"/commons-vfs2.jar" || borrow[3] != lay.LibDir() {
		t.Errorf("unexpected copyToLocal arguments: %v", borrow)
	}
	remove := rec.Calls[5].Cmd.Args
	if remove[2] != testRemoteDir+"/commons-vfs2.jar" {
		t.Errorf("unexpected rm arguments: %v", remove)
	}

	if !strings.Contains(out.String(), "Uploaded 4 jars to "+testRemoteDir) {
		t.Errorf("unexpected summary: %q", out.String())
	}
}

// TestJarsExistingRemoteDir tests that a present context directory skips
// the mkdir.
func TestJarsExistingRemoteDir(t *testing.T) {
	fsys, lay := newFixture(t)
	rec := &runnertest.Recorder{}

	err := Run(context.Background(), Options{
		Fs: fsys, Runner: rec, Layout: lay, HadoopHome: testHadoopHome, Out: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ops := fsOps(t, rec)
	if len(ops) != 9 {
		t.Fatalf("expected 9 commands, got %d: %v", len(ops), ops)
	}
	if ops[0] != "-ls" || ops[1] != "-moveFromLocal" {
		t.Errorf("expected the upload right after the probe, got %v", ops)
	}
}

// TestJarsReplicationScales tests the replication growth with the server
// count.
func TestJarsReplicationScales(t *testing.T) {
	fsys, lay := newFixture(t)

	var servers bytes.Buffer
	for i := 0; i < 120; i++ {
		_, _ = fmt.Fprintf(&servers, "host-%d\n", i)
	}
	if err := afero.WriteFile(fsys, lay.TServersPath(), servers.Bytes(), 0644); err != nil {
		t.Fatalf("failed to rewrite tservers: %v", err)
	}

	rec := &runnertest.Recorder{}
	err := Run(context.Background(), Options{
		Fs: fsys, Runner: rec, Layout: lay, HadoopHome: testHadoopHome, Out: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 120 servers: three base replicas plus one per full fifty.
	setrep := rec.Calls[2].Cmd.Args
	if setrep[3] != "5" {
		t.Errorf("expected replication 5, got %v", setrep)
	}
}

// TestJarsMoveFailure tests that a failing upload stops the sequence before
// any borrow-back.
func TestJarsMoveFailure(t *testing.T) {
	fsys, lay := newFixture(t)
	rec := &runnertest.Recorder{}
	rec.Handler = func(cmd runner.Command) error {
		if cmd.Args[1] == "-moveFromLocal" {
			return errors.New("quota exceeded")
		}
		return nil
	}

	err := Run(context.Background(), Options{
		Fs: fsys, Runner: rec, Layout: lay, HadoopHome: testHadoopHome, Out: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to move jars") {
		t.Errorf("unexpected message: %v", err)
	}
	for _, op := range fsOps(t, rec) {
		if op == "-copyToLocal" || op == "-setrep" {
			t.Errorf("expected the sequence to stop at the upload, saw %s", op)
		}
	}
}

// TestReplicationFor tests the replication formula.
func TestReplicationFor(t *testing.T) {
	tests := []struct {
		servers  int
		expected int
	}{
		{0, 3},
		{1, 3},
		{49, 3},
		{50, 4},
		{100, 5},
		{249, 7},
	}
	for _, tt := range tests {
		if got := replicationFor(tt.servers); got != tt.expected {
			t.Errorf("replicationFor(%d): expected %d, got %d", tt.servers, tt.expected, got)
		}
	}
}
