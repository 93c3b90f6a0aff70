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
	"github.com/zintix-labs/randlab/sdk/entropy"
)

// Float 回傳目標範圍內均勻分佈的浮點數。
//
// 流程：
//  1. 兩個界先過 Policy，非有限值在這裡換成有限替代。
//  2. 驗證排序語意（調整後的界；NaN 替代值視為排序違規）。
//  3. 相等界（兩端皆含）直接回傳，不消耗 entropy。
//  4. 抽依模式偏置的單位區間值 v，仿射混合 hi*v + lo*(1-v)。
//     混合式選 hi*v + lo*(1-v) 而非 lo + (hi-lo)*v：兩界量級懸殊或
//     異號時，後者的 hi-lo 可能溢位或災難性消去。
//  5. 夾回 [lo, hi] 吸收殘餘捨入誤差。
//
// float32 目標一樣以 float64 計算混合，轉回 T 後再夾一次。
func Float[T Floaters](src entropy.Source, min, max T, minIncl, maxIncl bool, pol Policy) (T, error) {
	if src == nil {
		return 0, errs.NewKind(errs.KindSourceUnavailable, "nil entropy source")
	}

	lo := pol.Adjust(float64(min))
	hi := pol.Adjust(float64(max))
	if err := checkFloatOrder(lo, hi, minIncl, maxIncl); err != nil {
		return 0, err
	}
	if lo == hi {
		return T(lo), nil
	}

	v, err := unitFloat(src, minIncl, maxIncl)
	if err != nil {
		return 0, err
	}

	res := hi*v + lo*(1-v)
	if res < lo {
		res = lo
	}
	if res > hi {
		res = hi
	}

	t := T(res)
	if t < T(lo) {
		t = T(lo)
	}
	if t > T(hi) {
		t = T(hi)
	}
	return t, nil
}
