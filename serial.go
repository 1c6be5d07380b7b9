// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing Waiter identifier.
// It tags log records so concurrent waits can be told apart.
type Serial = uint32

// waiters counts Waiters created by NewWaiter.
var waiters atomix.Uint32

// nextSerial returns the next Waiter serial.
func nextSerial() Serial {
	return waiters.Add(1)
}
