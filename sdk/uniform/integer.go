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

// Int 回傳 [min, max]（依 minIncl/maxIncl 調整開閉）內均勻分佈的整數。
//
// 單一泛型實作覆蓋 8/16/32/64-bit、有號/無號：
//   - 範圍先正規化成無號的 (lo, span)。
//   - span == 1：退化範圍，直接回傳唯一值，不消耗任何 entropy。
//   - span == 0：滿值域（整個 64-bit 可表示範圍），直接抽一個原始字組
//     重新詮釋為目標型別，不需要拒絕步驟。
//   - 其他：拒絕採樣。窄寬度（8/16-bit）借道 32-bit 字組路徑，演算法
//     不因寬度重複。
//
// 拒絕迴圈以機率 1 終止，期望迭代次數對任何範圍都不超過 2。
func Int[T Integers](src entropy.Source, min, max T, minIncl, maxIncl bool) (T, error) {
	if src == nil {
		return 0, errs.NewKind(errs.KindSourceUnavailable, "nil entropy source")
	}
	c, err := normalizeInt(min, max, minIncl, maxIncl)
	if err != nil {
		return 0, err
	}
	if c.span == 1 {
		return T(c.lo), nil
	}
	if c.span == 0 {
		w, err := src.Word(64)
		if err != nil {
			return 0, err
		}
		return T(w), nil
	}
	off, err := drawBelow(src, c.span, widthOf[T]())
	if err != nil {
		return 0, err
	}
	// 回加低界後截斷回目標寬度；二補數回繞讓符號重新詮釋自動成立。
	return T(c.lo + off), nil
}

// drawBelow 回傳 [0, span) 的無偏亂數。
//
// 去偏差方式：丟棄字組值域開頭「無法整除 span」的零頭區段
// （minv = 2^W mod span），接受的字組對 span 取餘即為嚴格均勻。
// span 為 2 的冪時 minv 為 0，不會發生任何拒絕。
func drawBelow(src entropy.Source, span uint64, widthBits uint) (uint64, error) {
	if widthBits <= 32 {
		// 8/16-bit 在 32-bit 中介寬度下計算，重用同一條路徑。
		minv := (uint64(1) << 32) % span
		for {
			w, err := src.Word(32)
			if err != nil {
				return 0, err
			}
			if w >= minv {
				return w % span, nil
			}
		}
	}

	minv := -span % span // 2^64 mod span
	for {
		w, err := src.Word(64)
		if err != nil {
			return 0, err
		}
		if w >= minv {
			return w % span, nil
		}
	}
}
