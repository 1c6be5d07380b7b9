// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package toolingtest provides test doubles for the client interfaces of
// package tooling: scriptable Primitives and an in-memory Connection,
// optionally loaded from a YAML Fixture.
package toolingtest
