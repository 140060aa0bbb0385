// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package pipe

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent pipe runs: the writer-to-reader slot
// hand-off is ordered by atomix operations the detector cannot observe.
const RaceEnabled = true
