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

package uniform

import "math"

// Policy 是浮點邊界的調整策略：在映射前，把非有限的範圍界
// （±Inf、NaN）替換成有限的替代值。
//
// 語意：
//   - AdjustErrors 為 true：+Inf、-Inf、NaN 各自換成對應的替代值。
//   - AdjustErrors 為 false：任何非有限值一律換成 Default。
//   - 有限值原樣通過。純函數，沒有失敗模式。
//
// Policy 是不可變的值型別：更新策略就是建構一個新值。Lab 的
// SetPolicy/Policy 以值傳遞，呼叫端持有的 Policy 永遠不會跟
// 運行中的策略互相別名（copy-not-alias 合約由值語意直接保證）。
type Policy struct {
	AdjustErrors bool    `json:"adjust_errors" yaml:"adjust_errors"`
	Default      float64 `json:"default" yaml:"default"`
	PosInf       float64 `json:"pos_inf" yaml:"pos_inf"`
	NegInf       float64 `json:"neg_inf" yaml:"neg_inf"`
	NaN          float64 `json:"nan" yaml:"nan"`
}

// Adjust 套用策略於單一數值。
func (p Policy) Adjust(v float64) float64 {
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}
	if !p.AdjustErrors {
		return p.Default
	}
	switch {
	case math.IsInf(v, 1):
		return p.PosInf
	case math.IsInf(v, -1):
		return p.NegInf
	default:
		return p.NaN
	}
}
