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

// Package entropy 定義 randlab 的亂數來源合約，並提供三種後端實作。
//
// 合約刻意縮到最小：來源只需要會「填滿一段位元組」與「產生指定寬度的
// 無號整數」。範圍映射、去偏差（rejection sampling）、浮點構造等演算法
// 全部住在 sdk/uniform，來源不需要知道自己會被怎麼用。
//
// 為什麼是 Word(widthBits) 而不是固定的 Uint64？
//
//  1. 允許實作針對原生輸出寬度做最佳化
//     - PCG32 的原生輸出是 32-bit：要求它先湊出 uint64 再截半是浪費。
//     - 反之 PCG64 原生輸出 64-bit，Word(64) 直接回傳即可。
//  2. 寬度是上游演算法的參數
//     - 整數範圍映射會依目標型別寬度決定要抽 32-bit 還是 64-bit 字組；
//       把寬度放進合約，讓每個來源用自己最合適的路徑供應。
//
// 併發合約（hard invariant）：
//
//	三個後端都「不做」內部鎖定。同一個 Source 實例若要被多個 goroutine
//	共用，呼叫端必須自行協調。這不是疏漏：單執行緒使用有效能假設，
//	偷偷加鎖反而改變行為。
package entropy

import (
	"github.com/zintix-labs/randlab/errs"
)

// Source 定義亂數來源的最小能力合約。
type Source interface {
	// Fill 以隨機位元組填滿 p；失敗時回傳 SourceUnavailable 分類的錯誤。
	Fill(p []byte) error
	// Word 回傳指定寬度（8/16/32/64）的無號亂數字組，置於 uint64 低位。
	// 寬度不合法時回傳 Warn 級錯誤。
	Word(widthBits uint) (uint64, error)
}

// Reseeder 由可重設種子的來源實作；CSPRNG 後端不實作（忽略 reseed）。
type Reseeder interface {
	// Reseed 重設內部狀態；只影響之後的抽樣，不影響進行中的呼叫。
	Reseed(seed int64)
}

// Restorable 定義可快照與還原的狀態介面（僅確定性後端提供）。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原內部狀態。
	Restore([]byte) error
}

// Kind 識別三種內建後端。只在組裝層（Lab / DTO）出現；
// 演算法端一律面對 Source 介面，對來源種類不可知。
type Kind uint8

const (
	// KindFast：PCG64，快速非加密 PRNG。
	KindFast Kind = iota
	// KindAudit：PCG32 (XSH RR)，可快照/還原的確定性 PRNG。
	KindAudit
	// KindSecure：OS CSPRNG（crypto/rand）。
	KindSecure
)

var kindNames = map[Kind]string{
	KindFast:   "fast",
	KindAudit:  "audit",
	KindSecure: "secure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind 解析來源名稱；空字串視為 fast。
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "fast":
		return KindFast, nil
	case "audit":
		return KindAudit, nil
	case "secure":
		return KindSecure, nil
	default:
		return KindFast, errs.Warnf("unknown entropy source: %q", s)
	}
}

// maskWidth 驗證寬度並回傳對應的低位遮罩。
func maskWidth(widthBits uint) (uint64, error) {
	switch widthBits {
	case 8, 16, 32:
		return (uint64(1) << widthBits) - 1, nil
	case 64:
		return ^uint64(0), nil
	default:
		return 0, errs.Warnf("unsupported word width: %d", widthBits)
	}
}

// WordFromFill 以 Fill 推導 Word：抽滿 widthBits/8 個位元組後以小端組字。
// 來源若沒有更快的原生路徑，可直接用這個推導。
func WordFromFill(src Source, widthBits uint) (uint64, error) {
	if _, err := maskWidth(widthBits); err != nil {
		return 0, err
	}
	var buf [8]byte
	n := widthBits / 8
	if err := src.Fill(buf[:n]); err != nil {
		return 0, err
	}
	var w uint64
	for i := uint(0); i < n; i++ {
		w |= uint64(buf[i]) << (8 * i)
	}
	return w, nil
}

// fillFromWords 以 64-bit 字組產生器填滿 p；確定性後端共用。
func fillFromWords(p []byte, next func() uint64) {
	i := 0
	for ; i+8 <= len(p); i += 8 {
		w := next()
		p[i] = byte(w)
		p[i+1] = byte(w >> 8)
		p[i+2] = byte(w >> 16)
		p[i+3] = byte(w >> 24)
		p[i+4] = byte(w >> 32)
		p[i+5] = byte(w >> 40)
		p[i+6] = byte(w >> 48)
		p[i+7] = byte(w >> 56)
	}
	if i < len(p) {
		w := next()
		for ; i < len(p); i++ {
			p[i] = byte(w)
			w >>= 8
		}
	}
}

// splitmix64 將輸入值混洗成新的 64-bit 狀態，用於種子展開。
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
