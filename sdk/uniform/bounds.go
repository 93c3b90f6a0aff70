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

import (
	"github.com/zintix-labs/randlab/errs"
)

// canonical 是整數範圍的正規化結果：半開 [lo, lo+span) 的無號表示。
//
//   - lo 是低界的「符號延伸位元樣式」（sign-extended bit pattern）：
//     有號值先經 uint64 轉換，讓後續加法在 mod 2^64 下自然回繞。
//   - span 是範圍內的元素個數；span == 0 代表完整的 64-bit 值域
//     （2^64 無法用 uint64 表示，以 0 作為滿值域記號）。
//
// 生命週期：每次呼叫建構、立即消費，不持久化。
type canonical struct {
	lo   uint64
	span uint64
}

// normalizeInt 把 (min, max, minIncl, maxIncl) 正規化成 canonical。
//
// 所有位移一律在 uint64 中計算。符號延伸轉換讓 hi-lo（mod 2^64）對每種
// 寬度都等於正確的元素個數，因此 max 已是型別極值時也不會溢位，
// 窄型別的差值計算也不需要獨立路徑。
//
// 驗證規則：
//   - 兩端皆含（II）：要求 min <= max。
//   - 任一端不含：要求 min < max（嚴格）。
//   - exclusive-exclusive 且 max == min+1：正規化後為空集合，同樣視為
//     InvalidRange（錯誤訊息會點名違規的界與其開閉屬性）。
func normalizeInt[T Integers](min, max T, minIncl, maxIncl bool) (canonical, error) {
	if minIncl && maxIncl {
		if min > max {
			return canonical{}, errs.Kindf(errs.KindInvalidRange,
				"min %v (inclusive) exceeds max %v (inclusive)", min, max)
		}
	} else if min >= max {
		return canonical{}, errs.Kindf(errs.KindInvalidRange,
			"min %v (%s) must be strictly below max %v (%s)",
			min, inclName(minIncl), max, inclName(maxIncl))
	}

	lo := uint64(min)
	if !minIncl {
		lo++
	}
	hi := uint64(max)
	if maxIncl {
		hi++
	}

	span := hi - lo
	if span == 0 && !(minIncl && maxIncl) {
		// 只有 exclusive-exclusive 的相鄰界會走到這裡（例如 (0,1)）。
		return canonical{}, errs.Kindf(errs.KindInvalidRange,
			"range (%v, %v) exclusive on both ends contains no value", min, max)
	}
	return canonical{lo: lo, span: span}, nil
}

func inclName(incl bool) string {
	if incl {
		return "inclusive"
	}
	return "exclusive"
}

// checkFloatOrder 驗證浮點界的排序語意；NaN 界（未被 policy 替換者）
// 一律視為排序違規。
func checkFloatOrder(lo, hi float64, minIncl, maxIncl bool) error {
	if minIncl && maxIncl {
		if lo <= hi {
			return nil
		}
		return errs.Kindf(errs.KindInvalidRange,
			"min %v (inclusive) exceeds max %v (inclusive)", lo, hi)
	}
	if lo < hi {
		return nil
	}
	return errs.Kindf(errs.KindInvalidRange,
		"min %v (%s) must be strictly below max %v (%s)",
		lo, inclName(minIncl), hi, inclName(maxIncl))
}
