// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toolingtest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"code.hybscloud.com/tooling"
	"gopkg.in/yaml.v3"
)

// Fixture describes a Connection in YAML:
//
//	closed: false
//	models:
//	  - name: GradleBuild
//	    value: {rootProject: app}
//	  - name: IdeaProject
//	    error: unknown-model
//	  - name: EclipseProject
//	    value: slow
//	    delay: 20ms
type Fixture struct {
	Closed bool           `yaml:"closed"`
	Models []ModelFixture `yaml:"models"`
}

// ModelFixture describes the Primitive serving one model.
// Error names a failure kind accepted by ErrorKind. Reject makes the
// failure synchronous. Delay makes the outcome arrive asynchronously.
type ModelFixture struct {
	Name   string        `yaml:"name"`
	Value  any           `yaml:"value"`
	Error  string        `yaml:"error"`
	Reject bool          `yaml:"reject"`
	Delay  time.Duration `yaml:"delay"`
}

var errorKinds = map[string]error{
	"unsupported-version":                 tooling.ErrUnsupportedVersion,
	"unknown-model":                       tooling.ErrUnknownModel,
	"unsupported-operation-configuration": tooling.ErrUnsupportedOperationConfiguration,
	"unsupported-build-argument":          tooling.ErrUnsupportedBuildArgument,
	"build":                               tooling.ErrBuild,
	"build-action-failure":                tooling.ErrBuildActionFailure,
	"test-execution":                      tooling.ErrTestExecution,
	"no-matching-tests":                   tooling.ErrNoMatchingTests,
	"build-cancelled":                     tooling.ErrBuildCancelled,
	"connection":                          tooling.ErrConnection,
	"connection-closed":                   tooling.ErrConnectionClosed,
}

// ErrorKind returns the tooling sentinel error named by kind,
// or nil if kind is not a known failure kind.
func ErrorKind(kind string) error {
	return errorKinds[kind]
}

// LoadConnection decodes a Fixture from r and builds its Connection.
// An empty document yields an open Connection with no models.
func LoadConnection(r io.Reader) (*Connection, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("toolingtest: decode fixture: %w", err)
	}
	return f.Connection()
}

// Connection builds the Connection described by f.
func (f Fixture) Connection() (*Connection, error) {
	c := NewConnection()
	for i, m := range f.Models {
		if m.Name == "" {
			return nil, fmt.Errorf("toolingtest: model %d: missing name", i)
		}
		if _, dup := c.models[m.Name]; dup {
			return nil, fmt.Errorf("toolingtest: model %q: duplicate name", m.Name)
		}
		p, err := m.primitive()
		if err != nil {
			return nil, fmt.Errorf("toolingtest: model %q: %w", m.Name, err)
		}
		c.models[m.Name] = p
	}
	c.closed = f.Closed
	return c, nil
}

func (m ModelFixture) primitive() (*Primitive[any], error) {
	var failure error
	if m.Error != "" {
		if failure = ErrorKind(m.Error); failure == nil {
			return nil, fmt.Errorf("unknown error kind %q", m.Error)
		}
	}
	switch {
	case m.Reject:
		if failure == nil {
			return nil, errors.New("reject requires an error kind")
		}
		return Reject[any](failure), nil
	case m.Delay > 0:
		return After[any](m.Delay, m.Value, failure), nil
	case failure != nil:
		return Fail[any](failure), nil
	}
	return Succeed[any](m.Value), nil
}
