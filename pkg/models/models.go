package models

import (
	"errors"
	"fmt"
)

var ErrUnknownVersion = errors.New("models: unknown version")

// Document is the top level of a generated .travis.yml.
// Fields are declared in key order of the emitted file.
type Document struct {
	Language string `yaml:"language" validate:"required"`
	Matrix   Matrix `yaml:"matrix"`
}

type Matrix struct {
	Include []Job `yaml:"include" validate:"required,min=1,dive"`
}

// Job is a single entry of the build matrix.
type Job struct {
	Dist     string   `yaml:"dist" validate:"required"`
	Env      []string `yaml:"env" validate:"len=4,dive,required"`
	OS       string   `yaml:"os" validate:"required,oneof=linux osx windows"`
	Script   []string `yaml:"script" validate:"required,min=1,dive,required"`
	Services []string `yaml:"services" validate:"dive,required"`
}

type Version struct {
	Name    string
	Enabled bool
}

// VersionList is an ordered allow-list. Disabled entries are kept so they
// can be switched back on without editing the list.
type VersionList []Version

func (l VersionList) Enabled() []string {
	names := make([]string, 0, len(l))
	for _, v := range l {
		if v.Enabled {
			names = append(names, v.Name)
		}
	}
	return names
}

// Enable switches on the named entries in place.
func (l VersionList) Enable(names ...string) error {
	for _, name := range names {
		found := false
		for i := range l {
			if l[i].Name == name {
				l[i].Enabled = true
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrUnknownVersion, name)
		}
	}
	return nil
}

// EnableAll returns a copy of l with every entry enabled.
func (l VersionList) EnableAll() VersionList {
	all := make(VersionList, len(l))
	for i, v := range l {
		all[i] = Version{Name: v.Name, Enabled: true}
	}
	return all
}
