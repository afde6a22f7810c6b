// Package matrix expands CMake and compiler versions into Travis CI jobs.
package matrix

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/remotecc/cimatrix/pkg/models"
)

const (
	Language     = "cpp"
	OS           = "linux"
	Dist         = "xenial"
	BuildScript  = "./ci/linux/build.sh"
	CompilerType = "gcc"
	BuildType    = "Release"
)

var ErrEmptyMatrix = errors.New("matrix: no enabled versions")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CMakeVersions lists the CMake releases the matrix is built against.
func CMakeVersions() models.VersionList {
	return models.VersionList{
		{Name: "3.5.0", Enabled: true},
		{Name: "3.6.0"},
		{Name: "3.7.0"},
		{Name: "3.8.0"},
		{Name: "3.9.0"},
		{Name: "3.10.0"},
		{Name: "3.11.0"},
		{Name: "3.12.0"},
		{Name: "3.13.0"},
		{Name: "3.13.3", Enabled: true}, // latest
	}
}

// GCCVersions lists the GCC releases the matrix is built against.
func GCCVersions() models.VersionList {
	return models.VersionList{
		{Name: "5.3", Enabled: true},
		{Name: "5.4", Enabled: true},
		{Name: "5.5", Enabled: true},
		{Name: "6.1"},
		{Name: "6.2", Enabled: true},
		{Name: "6.3"},
		{Name: "6.4"},
		{Name: "6.5", Enabled: true},
		{Name: "7.1"},
		{Name: "7.2"},
		{Name: "7.3", Enabled: true},
		{Name: "7.4", Enabled: true},
		{Name: "8.1", Enabled: true},
		{Name: "8.2", Enabled: true},
	}
}

// NewLinuxJob returns the job running the linux build script with the given
// toolchain in the environment.
func NewLinuxJob(cmakeVersion, compilerType, compilerVersion, buildType string) models.Job {
	return models.Job{
		OS:       OS,
		Dist:     Dist,
		Services: []string{"docker"},
		Env: []string{
			"CI_CMAKE_VERSION=" + cmakeVersion,
			"CI_COMPILER_TYPE=" + compilerType,
			"CI_COMPILER_VERSION=" + compilerVersion,
			"CI_BUILD_TYPE=" + buildType,
		},
		Script: []string{BuildScript},
	}
}

// Expand pairs every CMake version with every compiler version. CMake is the
// outer loop, so the first len(compilers) jobs all use cmake[0].
func Expand(cmake, compilers []string, compilerType, buildType string) []models.Job {
	jobs := make([]models.Job, 0, len(cmake)*len(compilers))
	for _, cv := range cmake {
		for _, gv := range compilers {
			jobs = append(jobs, NewLinuxJob(cv, compilerType, gv, buildType))
		}
	}
	return jobs
}

type Generator struct {
	CMake        models.VersionList
	GCC          models.VersionList
	CompilerType string
	BuildType    string
}

func NewGenerator() *Generator {
	return &Generator{
		CMake:        CMakeVersions(),
		GCC:          GCCVersions(),
		CompilerType: CompilerType,
		BuildType:    BuildType,
	}
}

// Generate builds a new document from the enabled versions.
func (g *Generator) Generate() (*models.Document, error) {
	cmake, gcc := g.CMake.Enabled(), g.GCC.Enabled()
	if len(cmake) == 0 || len(gcc) == 0 {
		return nil, ErrEmptyMatrix
	}

	doc := &models.Document{
		Language: Language,
		Matrix: models.Matrix{
			Include: Expand(cmake, gcc, g.CompilerType, g.BuildType),
		},
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("matrix: invalid document: %w", err)
	}
	return doc, nil
}
