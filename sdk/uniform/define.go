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

// Package uniform 把任意 entropy.Source 的原始位元流，映射成呼叫端指定
// 範圍內的均勻分佈數值。
//
// 支援的數值類別：
//   - 定寬整數（8/16/32/64-bit、有號/無號）：拒絕採樣（rejection sampling）
//     消除模除偏差（modulo bias），單一泛型實作覆蓋所有寬度。
//   - IEEE 浮點（float32/float64）：53-bit 單位區間抽樣 + 仿射混合。
//   - 高精度十進位（shopspring/decimal）：96-bit 尾數、scale 28 的單位
//     區間抽樣 + 仿射混合。
//
// 四種開閉區間模式（inclusive/exclusive × 低/高界）先由邊界正規化統一成
// 半開 [lo, hi) 形式（整數），或轉為單位區間的端點偏置（浮點/十進位），
// 之後的映射演算法完全不分模式。
//
// 本檔案 (define.go) 定義套件共用的泛型約束 (Generic Constraints)。
package uniform

import "unsafe"

// Integers 定義所有底層實現為定寬整數型別的集合
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floaters 定義所有底層實現為浮點數型別的集合
type Floaters interface {
	~float32 | ~float64
}

// widthOf 回傳 T 的位元寬度（8/16/32/64）。
func widthOf[T Integers]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}
