// Package batch runs many conversions described by a YAML manifest.
package batch

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"badc0de.net/pkg/dfeatlas/paths"
)

// Job kinds.
const (
	KindSheet = "sheet"
	KindAnim  = "anim"
)

// Manifest is read from YAML:
//
//	app: https://example.org/tool
//	jobs:
//	  - kind: sheet
//	    input: hero.sprites
//	    output: hero.json
//	  - kind: anim
//	    input: hero.anim
//	    output: hero-anim.json
type Manifest struct {
	App  string `yaml:"app"`
	Jobs []Job  `yaml:"jobs"`
}

type Job struct {
	Kind   string `yaml:"kind"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Hash   bool   `yaml:"hash"` // sheet jobs only
}

func (j Job) String() string {
	return j.Kind + " " + j.Input + " -> " + j.Output
}

// Validate checks every job before any of them runs.
func (m *Manifest) Validate() error {
	if len(m.Jobs) == 0 {
		return errors.New("manifest has no jobs")
	}
	for i, j := range m.Jobs {
		switch j.Kind {
		case KindSheet:
		case KindAnim:
			if j.Hash {
				return errors.Errorf("job %d: hash applies to sheet jobs only", i)
			}
		default:
			return errors.Errorf("job %d: unknown kind %q (want %q or %q)", i, j.Kind, KindSheet, KindAnim)
		}
		if j.Input == "" || j.Output == "" {
			return errors.Errorf("job %d: input and output are required", i)
		}
	}
	return nil
}

// ReadManifest parses and validates a manifest. Unknown keys are errors.
func ReadManifest(r io.Reader) (*Manifest, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}
	m := &Manifest{}
	if err := yaml.UnmarshalStrict(b, m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifest reads the manifest at path. Relative job paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	f, err := paths.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadManifest(f)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %q", path)
	}
	for i := range m.Jobs {
		m.Jobs[i].Input = paths.Companion(path, m.Jobs[i].Input)
		m.Jobs[i].Output = paths.Companion(path, m.Jobs[i].Output)
	}
	return m, nil
}
