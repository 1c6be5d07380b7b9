// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toolingtest

import (
	"context"
	"fmt"
	"sync"

	"code.hybscloud.com/tooling"
)

// Connection is an in-memory tooling.ProjectConnection.
// Models are served by Primitives registered with SetModel.
type Connection struct {
	mu     sync.Mutex
	models map[string]*Primitive[any]
	closed bool
}

// NewConnection returns an open Connection with no models.
func NewConnection() *Connection {
	return &Connection{models: make(map[string]*Primitive[any])}
}

// SetModel registers the Primitive serving the model called name.
func (c *Connection) SetModel(name string, p *Primitive[any]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[name] = p
}

// Close closes the connection. Later calls fail with
// tooling.ErrConnectionClosed; operations already started are unaffected.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Model implements tooling.ProjectConnection.
// A closed connection rejects Get synchronously. An unknown model fails
// through the handler with tooling.ErrUnknownModel.
func (c *Connection) Model(name string) tooling.ModelBuilder[any] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Reject[any](tooling.ErrConnectionClosed)
	}
	p, ok := c.models[name]
	if !ok {
		return Fail[any](fmt.Errorf("%w: %s", tooling.ErrUnknownModel, name))
	}
	return p
}

// GetModel implements tooling.ProjectConnection.
// It blocks until the model's Primitive reports its outcome.
func (c *Connection) GetModel(name string) (any, error) {
	return tooling.AwaitModel(context.Background(), c.Model(name))
}
