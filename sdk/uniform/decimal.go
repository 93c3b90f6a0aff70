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
	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/entropy"
)

// Decimal 回傳目標範圍內均勻分佈的高精度十進位數。
//
// 與 Float 同一套流程，但不經過 Policy（十進位沒有非有限值），且混合
// 在任意精度下進行：v ∈ [0,1] 時 hi*v + lo*(1-v) 在精確算術下必落在
// [lo, hi]。結果收斂回 scale 28 後再夾一次，吸收捨入方向性。
func Decimal(src entropy.Source, min, max decimal.Decimal, minIncl, maxIncl bool) (decimal.Decimal, error) {
	if src == nil {
		return decimal.Decimal{}, errs.NewKind(errs.KindSourceUnavailable, "nil entropy source")
	}

	cmp := min.Cmp(max)
	if minIncl && maxIncl {
		if cmp > 0 {
			return decimal.Decimal{}, errs.Kindf(errs.KindInvalidRange,
				"min %s (inclusive) exceeds max %s (inclusive)", min, max)
		}
	} else if cmp >= 0 {
		return decimal.Decimal{}, errs.Kindf(errs.KindInvalidRange,
			"min %s (%s) must be strictly below max %s (%s)",
			min, inclName(minIncl), max, inclName(maxIncl))
	}
	if cmp == 0 {
		return min, nil
	}

	v, err := unitDecimal(src, minIncl, maxIncl)
	if err != nil {
		return decimal.Decimal{}, err
	}

	res := max.Mul(v).Add(min.Mul(decimalOne.Sub(v)))
	res = res.Round(decimalScale)
	if res.LessThan(min) {
		res = min
	}
	if res.GreaterThan(max) {
		res = max
	}
	return res, nil
}
