package cimatrix

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/remotecc/cimatrix/pkg/matrix"
	"github.com/remotecc/cimatrix/pkg/models"
	"gopkg.in/yaml.v3"
)

func resetFlags(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(io.Discard) })
	log.SetOutput(io.Discard)

	verbose = false
	compilerType = matrix.CompilerType
	buildType = matrix.BuildType
	enableCMake = nil
	enableGCC = nil
	enableAll = false
	indent = 2
	compactSequences = false
}

func generate(t *testing.T) models.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := run(&buf); err != nil {
		t.Fatal(err)
	}

	var doc models.Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRunDefault(t *testing.T) {
	resetFlags(t)
	doc := generate(t)
	if len(doc.Matrix.Include) != 18 {
		t.Errorf("expected 18 jobs, got %d", len(doc.Matrix.Include))
	}
}

func TestRunEnableVersions(t *testing.T) {
	resetFlags(t)
	enableCMake = []string{"3.10.0"}
	enableGCC = []string{"6.1", "7.1"}
	buildType = "Debug"

	doc := generate(t)
	if len(doc.Matrix.Include) != 3*11 {
		t.Fatalf("expected %d jobs, got %d", 3*11, len(doc.Matrix.Include))
	}
	if doc.Matrix.Include[0].Env[3] != "CI_BUILD_TYPE=Debug" {
		t.Errorf("expected Debug build type, got %s", doc.Matrix.Include[0].Env[3])
	}
}

func TestRunAll(t *testing.T) {
	resetFlags(t)
	enableAll = true

	doc := generate(t)
	if len(doc.Matrix.Include) != 10*14 {
		t.Errorf("expected %d jobs, got %d", 10*14, len(doc.Matrix.Include))
	}
}

func TestRunUnknownVersion(t *testing.T) {
	resetFlags(t)
	enableGCC = []string{"4.8"}

	err := run(&bytes.Buffer{})
	if !errors.Is(err, models.ErrUnknownVersion) {
		t.Errorf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestPrintVersions(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printVersions(&buf, "gcc", matrix.GCCVersions())

	out := buf.String()
	if !strings.HasPrefix(out, "gcc (9 of 14 enabled):\n") {
		t.Errorf("missing title in %q", out)
	}
	if !strings.Contains(out, "  + 5.3\n") {
		t.Errorf("expected 5.3 enabled in %q", out)
	}
	if !strings.Contains(out, "  - 6.1 (disabled)\n") {
		t.Errorf("expected 6.1 disabled in %q", out)
	}
}

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return stdout.String(), stderr.String()
}

func TestExecuteVerboseKeepsStdoutClean(t *testing.T) {
	resetFlags(t)
	stdout, stderr := execute(t, "-v")

	if strings.Contains(stdout, "cimatrix |") {
		t.Errorf("log output leaked into stdout:\n%s", stdout)
	}
	var doc models.Document
	if err := yaml.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Matrix.Include) != 18 {
		t.Errorf("expected 18 jobs, got %d", len(doc.Matrix.Include))
	}
	if !strings.Contains(stderr, "cimatrix | generated 18 jobs") {
		t.Errorf("expected progress on stderr, got %q", stderr)
	}
}

func TestExecuteQuiet(t *testing.T) {
	resetFlags(t)
	_, stderr := execute(t)
	if stderr != "" {
		t.Errorf("expected nothing on stderr, got %q", stderr)
	}
}

func TestExecuteCompactSequences(t *testing.T) {
	resetFlags(t)
	stdout, _ := execute(t, "--compact-sequences", "--indent", "4")
	if !strings.Contains(stdout, "\n    include:\n    - dist: xenial\n") {
		t.Errorf("expected compact sequences, got:\n%s", stdout)
	}
}

func TestRunRejectsIndent(t *testing.T) {
	resetFlags(t)
	indent = 12

	var buf bytes.Buffer
	if err := run(&buf); err == nil {
		t.Error("expected error for indent 12")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	stdout, _ := execute(t, "version")

	for _, want := range []string{"Version: nightly\n", "Build Date: unknown\n", "Commit: unknown\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in %q", want, stdout)
		}
	}
}
