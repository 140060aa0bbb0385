// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "code.hybscloud.com/iox"

// ErrWouldBlock reports that a non-blocking pop found the pipe empty.
//
// ErrWouldBlock is a control flow signal, not a failure. Push never
// returns it: pipes grow instead of pushing back on writers.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    item, err := p.TryPop()
//	    if err == nil {
//	        backoff.Reset()
//	        handle(item)
//	        continue
//	    }
//	    if pipe.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
