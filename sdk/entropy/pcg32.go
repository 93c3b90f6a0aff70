// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package entropy

import (
	"crypto/rand"
	"math"
	"math/big"
	"math/bits"

	"github.com/zintix-labs/randlab/errs"
)

const pcg32Multiplier = 6364136223846793005

// Audit 是稽核用後端：64-bit 狀態、32-bit 輸出的 PCG (XSH RR) 產生器。
// 狀態只有 16 bytes，Snapshot/Restore 成本極低，適合回放與審計場景。
type Audit struct {
	state uint64
	inc   uint64
}

// NewAudit 以指定 seed 建立 Audit 來源。
func NewAudit(seed int64) *Audit {
	a := &Audit{}
	a.Reseed(seed)
	return a
}

// NewAuditAuto 使用加密隨機來源產生 seed，建立 Audit 來源。
func NewAuditAuto() *Audit {
	seed, _ := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	return NewAudit(seed.Int64())
}

// Reseed 依 PCG 建議的初始化流程重設狀態：
// 先用 stream 初始化一次，再加 seed，最後再 step。
func (a *Audit) Reseed(seed int64) {
	const seq uint64 = 1
	a.state = 0
	a.inc = (seq << 1) | 1
	a.nextUint32()
	a.state += uint64(seed)
	a.nextUint32()
}

// Uint32 回傳非負整數uint32亂數。
func (a *Audit) Uint32() uint32 {
	return a.nextUint32()
}

// Uint64 回傳非負整數uint64亂數（兩次 32-bit 輸出組合）。
func (a *Audit) Uint64() uint64 {
	return (uint64(a.nextUint32()) << 32) | uint64(a.nextUint32())
}

// Word 回傳指定寬度的無號亂數字組。
// 原生輸出是 32-bit：寬度 <= 32 只消耗一次輸出，64 消耗兩次。
func (a *Audit) Word(widthBits uint) (uint64, error) {
	mask, err := maskWidth(widthBits)
	if err != nil {
		return 0, err
	}
	if widthBits <= 32 {
		return uint64(a.nextUint32()) & mask, nil
	}
	return a.Uint64(), nil
}

// Fill 以隨機位元組填滿 p；此後端不會失敗。
func (a *Audit) Fill(p []byte) error {
	fillFromWords(p, a.Uint64)
	return nil
}

// Snapshot 取得當下內部狀態（state/inc 各 8 bytes，big-endian）。
func (a *Audit) Snapshot() ([]byte, error) {
	b := make([]byte, 0, 16)
	b = appendUint64(b, a.state)
	b = appendUint64(b, a.inc)
	return b, nil
}

// Restore 恢復內部狀態。
func (a *Audit) Restore(data []byte) error {
	if len(data) != 16 {
		return errs.Warnf("audit snapshot must be 16 bytes, got %d", len(data))
	}
	a.state = readUint64(data[:8])
	a.inc = readUint64(data[8:])
	return nil
}

//---------------------------------------
// 內部方法
//---------------------------------------

func (a *Audit) nextUint32() uint32 {
	oldstate := a.state
	a.state = oldstate*pcg32Multiplier + a.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

func appendUint64(b []byte, v uint64) []byte {
	return append(b,
		byte(v>>56),
		byte(v>>48),
		byte(v>>40),
		byte(v>>32),
		byte(v>>24),
		byte(v>>16),
		byte(v>>8),
		byte(v),
	)
}

func readUint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}
