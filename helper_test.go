// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/mbox"
)

// execStep drives tx to completion via a Step+Advance loop instead of Exec,
// so tests can exercise the non-blocking single-step path directly.
// Retries on error (would-block: the mailbox is not ready yet).
func execStep[R any](tx kont.Eff[R]) R {
	result, susp := mbox.Step[R](tx)
	for susp != nil {
		var err error
		result, susp, err = mbox.Advance(susp)
		if err != nil {
			continue
		}
	}
	return result
}
