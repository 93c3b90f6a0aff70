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
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab/sdk/entropy"
)

const (
	// float64 尾數可承載的位元數；53-bit 之外的位元對 [0,1) 沒有貢獻。
	unitBits = 53
	unitMask = (uint64(1) << unitBits) - 1
	// 2^53；w/unitDenom 產生 [0, 1-2^-53] 的格點。
	unitDenom = float64(uint64(1) << unitBits)

	// decimalScale 固定為 28 位十進位（目標十進位型別的原生精度）。
	decimalScale = 28
	// decimalHiMax = floor(10^28 / 2^64)。
	// 高位字組均勻落在 [0, decimalHiMax] 時，96-bit 尾數的最大值剛好
	// 略超過 10^28（即數值略超過 1.0），超出部分由 [0,1] 夾取吸收。
	decimalHiMax = 542101086
)

// unitFloat 回傳依開閉模式偏置的單位區間抽樣。
//
// 原生抽樣恆為半開低含 [0, 1-2^-53]（53-bit 格點除以 2^53）。四種模式
// 以固定常數改寫格點對應的區間端點，讓 Float 的仿射混合在浮點捨入後
// 能夠（也只能）命中被要求包含的目標端點：
//
//	incl-excl: w / 2^53          → [0, 1)
//	incl-incl: w / (2^53 - 1)    → [0, 1]
//	excl-incl: (w+1) / 2^53      → (0, 1]
//	excl-excl: (w+0.5) / 2^53    → (0, 1)
//
// 偏移量（1、0.5、分母減一）都是預先決定的常數：它們正是抽樣器格點與
// 1.0 之間「可量測的最小間隙」，不需要在執行期搜尋 ε。
func unitFloat(src entropy.Source, minIncl, maxIncl bool) (float64, error) {
	raw, err := src.Word(64)
	if err != nil {
		return 0, err
	}
	w := raw & unitMask

	switch {
	case minIncl && !maxIncl:
		return float64(w) / unitDenom, nil
	case minIncl && maxIncl:
		return float64(w) / (unitDenom - 1), nil
	case !minIncl && maxIncl:
		return float64(w+1) / unitDenom, nil
	default:
		return (float64(w) + 0.5) / unitDenom, nil
	}
}

var (
	decimalZero = decimal.New(0, 0)
	decimalOne  = decimal.New(1, 0)
	// 十進位抽樣的最小步距：1e-28（scale 28 的一個量子）。
	decimalStep         = decimal.New(1, -decimalScale)
	decimalOneMinusStep = decimalOne.Sub(decimalStep)
)

// unitDecimal 回傳 [0,1] 內均勻的十進位抽樣，scale 固定 28。
//
// 構造方式：三個 32-bit 字組組成 96-bit 尾數——低、中字組全域均勻，
// 高字組均勻落在 [0, decimalHiMax]，使最大可能值剛超過 1.0；
// 最後夾回 [0,1] 吸收這個刻意留下的餘裕。
//
// 開閉模式以端點替換處理：抽中被排除的端點時改成相鄰的量子
// （0 → 1e-28、1 → 1-1e-28）。量子是型別自己的最小步距，和浮點路徑的
// ε 偏置扮演同一角色。
func unitDecimal(src entropy.Source, minIncl, maxIncl bool) (decimal.Decimal, error) {
	lo, err := src.Word(32)
	if err != nil {
		return decimal.Decimal{}, err
	}
	mid, err := src.Word(32)
	if err != nil {
		return decimal.Decimal{}, err
	}
	hi, err := drawBelow(src, decimalHiMax+1, 32)
	if err != nil {
		return decimal.Decimal{}, err
	}

	mant := new(big.Int).SetUint64(hi)
	mant.Lsh(mant, 32)
	mant.Or(mant, new(big.Int).SetUint64(mid))
	mant.Lsh(mant, 32)
	mant.Or(mant, new(big.Int).SetUint64(lo))

	d := decimal.NewFromBigInt(mant, -decimalScale)
	if d.GreaterThan(decimalOne) {
		d = decimalOne
	}

	if !maxIncl && d.Equal(decimalOne) {
		d = decimalOneMinusStep
	}
	if !minIncl && d.Equal(decimalZero) {
		d = decimalStep
	}
	return d, nil
}
