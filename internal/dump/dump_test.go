package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/evidenceworks/go-exif-harvest/internal/config"
	"github.com/evidenceworks/go-exif-harvest/internal/exiftool"
	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

const sampleCSV = "SourceFile,IFD0:Make\nphotos/a.jpg,Canon\nphotos/b.jpg,Nikon\n"

// fakeRunner stands in for a real ExifTool install
type fakeRunner struct {
	lookPathErr error
	output      string
	runErr      error
	gotArgv     []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(argv []string, stdout io.Writer) error {
	f.gotArgv = argv
	if f.output != "" {
		if _, err := io.WriteString(stdout, f.output); err != nil {
			return err
		}
	}
	return f.runErr
}

func testConfig(t *testing.T) config.DumpConfig {
	t.Helper()
	return config.DumpConfig{
		RootDir:          t.TempDir(),
		OutputFile:       filepath.Join(t.TempDir(), "out", "metadata_master.csv"),
		Extensions:       []string{"jpg", "pdf"},
		RequestAll:       config.DefaultRequestAll,
		LargeFileSupport: true,
		Recursive:        true,
		ExifTool:         "exiftool",
	}
}

func TestRunStreamsOutput(t *testing.T) {
	cfg := testConfig(t)

	result, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(content))

	assert.Equal(t, int64(2), result.RowCount)
	assert.Equal(t, int64(len(sampleCSV)), result.SizeBytes)

	want := sha3.Sum256([]byte(sampleCSV))
	assert.Equal(t, fmt.Sprintf("%x", want), result.SHA3Hash)
}

func TestRunCommandShape(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{output: sampleCSV}

	result, err := Run(cfg, runner)
	require.NoError(t, err)

	require.NotEmpty(t, runner.gotArgv)
	assert.Equal(t, "exiftool", runner.gotArgv[0])
	assert.Equal(t, cfg.RootDir, runner.gotArgv[len(runner.gotArgv)-1])
	assert.Contains(t, runner.gotArgv, "-csv")
	assert.Contains(t, runner.gotArgv, "-r")
	assert.Equal(t, runner.gotArgv, result.Command)
}

func TestRunMissingRoot(t *testing.T) {
	cfg := testConfig(t)
	cfg.RootDir = filepath.Join(cfg.RootDir, "absent")

	_, err := Run(cfg, &fakeRunner{})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRunRootIsFile(t *testing.T) {
	cfg := testConfig(t)
	file := filepath.Join(cfg.RootDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	cfg.RootDir = file

	_, err := Run(cfg, &fakeRunner{})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRunRootCheckedBeforeExtensions(t *testing.T) {
	cfg := testConfig(t)
	cfg.RootDir = filepath.Join(cfg.RootDir, "absent")
	cfg.Extensions = nil

	_, err := Run(cfg, &fakeRunner{})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRunEmptyExtensions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Extensions = []string{".", "  "}

	_, err := Run(cfg, &fakeRunner{output: sampleCSV})
	assert.ErrorIs(t, err, exiftool.ErrNoExtensions)
	assert.NoFileExists(t, cfg.OutputFile)
}

func TestRunMissingExecutable(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{lookPathErr: errors.New("executable file not found in $PATH")}

	_, err := Run(cfg, runner)
	assert.ErrorIs(t, err, ErrExifToolNotFound)
}

func TestRunConflictWithoutForce(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)

	_, err = Run(cfg, &fakeRunner{output: "should,not,land\n"})
	assert.ErrorIs(t, err, ErrOutputExists)

	content, readErr := os.ReadFile(cfg.OutputFile)
	require.NoError(t, readErr)
	assert.Equal(t, sampleCSV, string(content))
}

func TestRunForceOverwrites(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(cfg, &fakeRunner{output: "old,data\n1,2\n"})
	require.NoError(t, err)

	cfg.Force = true
	result, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(content))
}

func TestRunChildFailureKeepsPartialOutput(t *testing.T) {
	cfg := testConfig(t)
	partial := "SourceFile,IFD0:Make\nphotos/a.jpg,Canon\n"
	runner := &fakeRunner{output: partial, runErr: errors.New("exit status 1")}

	_, err := Run(cfg, runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exiftool failed")

	content, readErr := os.ReadFile(cfg.OutputFile)
	require.NoError(t, readErr)
	assert.Equal(t, partial, string(content))
}

func TestRunWritesManifest(t *testing.T) {
	cfg := testConfig(t)
	cfg.WriteManifest = true

	result, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)

	content, err := os.ReadFile(result.OutputFile + ".manifest.json")
	require.NoError(t, err)

	var manifest types.DumpManifest
	require.NoError(t, json.Unmarshal(content, &manifest))
	assert.Equal(t, result.Command, manifest.Command)
	assert.Equal(t, []string{"jpg", "pdf"}, manifest.Extensions)
	assert.Equal(t, int64(2), manifest.RowCount)
	assert.Equal(t, result.SHA3Hash, manifest.SHA3Hash)
	assert.False(t, manifest.GeneratedAt.IsZero())
}

func TestRunNoManifestByDefault(t *testing.T) {
	cfg := testConfig(t)

	result, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)
	assert.NoFileExists(t, result.OutputFile+".manifest.json")
}

func TestRunCreatesParentDirectories(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputFile = filepath.Join(t.TempDir(), "deep", "nested", "dir", "out.csv")

	_, err := Run(cfg, &fakeRunner{output: sampleCSV})
	require.NoError(t, err)
	assert.FileExists(t, cfg.OutputFile)
}

func TestRunEmptyChildOutput(t *testing.T) {
	cfg := testConfig(t)

	result, err := Run(cfg, &fakeRunner{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.RowCount)
	assert.Equal(t, int64(0), result.SizeBytes)
	assert.FileExists(t, result.OutputFile)
}
