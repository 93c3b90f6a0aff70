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
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/stats"
)

// -----------------------------------------------------------------------------
// Helper Sources
// -----------------------------------------------------------------------------

// countSource 包裝另一個來源並計算 Word/Fill 的呼叫次數，
// 用來驗證「退化範圍不消耗 entropy」這類合約。
type countSource struct {
	inner entropy.Source
	words int
	fills int
}

func (c *countSource) Fill(p []byte) error {
	c.fills++
	return c.inner.Fill(p)
}

func (c *countSource) Word(widthBits uint) (uint64, error) {
	c.words++
	return c.inner.Word(widthBits)
}

// scriptSource 依腳本逐一回傳字組（寬度遮罩後），供端點構造測試使用。
type scriptSource struct {
	words []uint64
	i     int
}

func (s *scriptSource) Fill(p []byte) error {
	for i := range p {
		p[i] = 0
	}
	return nil
}

func (s *scriptSource) Word(widthBits uint) (uint64, error) {
	w := s.words[s.i%len(s.words)]
	s.i++
	if widthBits < 64 {
		w &= (uint64(1) << widthBits) - 1
	}
	return w, nil
}

// maxSource 永遠回傳全 1 字組（該寬度的最大值）。
type maxSource struct{}

func (maxSource) Fill(p []byte) error {
	for i := range p {
		p[i] = 0xFF
	}
	return nil
}

func (maxSource) Word(widthBits uint) (uint64, error) {
	if widthBits < 64 {
		return (uint64(1) << widthBits) - 1, nil
	}
	return ^uint64(0), nil
}

// -----------------------------------------------------------------------------
// Tests for Int (rejection sampling / boundary normalization)
// -----------------------------------------------------------------------------

// TestIntBoundsAllModes 驗證四種開閉模式下，抽樣結果都落在要求的範圍內
func TestIntBoundsAllModes(t *testing.T) {
	src := entropy.NewFast(7)
	modes := []struct {
		name             string
		minIncl, maxIncl bool
		lo, hi           int64 // 允許的閉區間
	}{
		{"incl-incl", true, true, -5, 5},
		{"incl-excl", true, false, -5, 4},
		{"excl-incl", false, true, -4, 5},
		{"excl-excl", false, false, -4, 4},
	}
	for _, m := range modes {
		for i := 0; i < 5000; i++ {
			v, err := Int(src, int64(-5), int64(5), m.minIncl, m.maxIncl)
			if err != nil {
				t.Fatalf("[%s] unexpected error: %v", m.name, err)
			}
			if v < m.lo || v > m.hi {
				t.Fatalf("[%s] value %d outside [%d, %d]", m.name, v, m.lo, m.hi)
			}
		}
	}
}

// TestIntNarrowWidths 驗證 8/16-bit 型別走同一條演算法路徑且結果在界內
func TestIntNarrowWidths(t *testing.T) {
	src := entropy.NewFast(11)
	for i := 0; i < 5000; i++ {
		v8, err := Int(src, int8(-20), int8(20), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if v8 < -20 || v8 > 20 {
			t.Fatalf("int8 value %d outside [-20, 20]", v8)
		}
		v16, err := Int(src, uint16(1000), uint16(2000), true, false)
		if err != nil {
			t.Fatal(err)
		}
		if v16 < 1000 || v16 >= 2000 {
			t.Fatalf("uint16 value %d outside [1000, 2000)", v16)
		}
	}
}

// TestIntChiSquareUniform 對 [-5,5] 的 100,000 次抽樣做卡方適合度檢定
// 檢查項目: 11 個值的出現頻率與均勻多項分佈無顯著差異（無模除偏差）
func TestIntChiSquareUniform(t *testing.T) {
	src := entropy.NewFast(1)
	freq, err := stats.NewFreq(-5, 5)
	if err != nil {
		t.Fatal(err)
	}
	const draws = 100000
	for i := 0; i < draws; i++ {
		v, err := Int(src, int64(-5), int64(5), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if err := freq.Add(v); err != nil {
			t.Fatal(err)
		}
	}

	// 每個值都要出現，且頻率接近 1/11
	expected := 1.0 / 11.0
	for i, c := range freq.Counts() {
		if c == 0 {
			t.Fatalf("value %d never drawn", i-5)
		}
		got := float64(c) / float64(draws)
		if math.Abs(got-expected) > 0.01 {
			t.Errorf("value %d: prob %.4f deviates from %.4f", i-5, got, expected)
		}
	}

	gof, err := stats.ChiSquareUniform(freq)
	if err != nil {
		t.Fatal(err)
	}
	if !gof.Uniform(0.0001) {
		t.Errorf("chi-square rejects uniformity: chi=%.4f p=%.6f", gof.ChiSquare, gof.PValue)
	}
}

// TestIntDegenerateZeroEntropy 驗證單值範圍直接回傳且不消耗任何 entropy
func TestIntDegenerateZeroEntropy(t *testing.T) {
	cs := &countSource{inner: entropy.NewFast(3)}

	v, err := Int(cs, int32(42), int32(42), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}

	// excl-incl 相鄰界也是單值範圍：(126, 127] = {127}
	v8, err := Int(cs, int8(126), int8(127), false, true)
	if err != nil {
		t.Fatal(err)
	}
	if v8 != 127 {
		t.Fatalf("expected 127, got %d", v8)
	}

	if cs.words != 0 || cs.fills != 0 {
		t.Fatalf("degenerate range consumed entropy: words=%d fills=%d", cs.words, cs.fills)
	}
}

// TestIntInvalidRanges 驗證排序違規與空範圍回報 InvalidRange
func TestIntInvalidRanges(t *testing.T) {
	src := entropy.NewFast(5)
	cases := []struct {
		name             string
		min, max         int64
		minIncl, maxIncl bool
	}{
		{"inclusive reversed", 5, -5, true, true},
		{"exclusive equal", 3, 3, false, true},
		{"exclusive reversed", 4, 3, true, false},
		{"excl-excl adjacent is empty", 0, 1, false, false},
	}
	for _, c := range cases {
		_, err := Int(src, c.min, c.max, c.minIncl, c.maxIncl)
		if err == nil {
			t.Fatalf("[%s] expected error, got none", c.name)
		}
		if !errs.IsKind(err, errs.KindInvalidRange) {
			t.Fatalf("[%s] expected KindInvalidRange, got %v", c.name, err)
		}
	}
}

// TestIntFullSpan 驗證整個可表示範圍的抽樣不溢位且涵蓋極值
func TestIntFullSpan(t *testing.T) {
	// 全 1 來源：uint64 滿值域應回傳最大值
	v, err := Int(maxSource{}, uint64(0), uint64(math.MaxUint64), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if v != math.MaxUint64 {
		t.Fatalf("expected MaxUint64, got %d", v)
	}

	// int64 滿值域：全 1 字組重新詮釋為 -1
	vi, err := Int(maxSource{}, int64(math.MinInt64), int64(math.MaxInt64), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if vi != -1 {
		t.Fatalf("expected -1, got %d", vi)
	}

	// uint8 滿值域：大量抽樣應同時出現 0 與 255
	src := entropy.NewFast(9)
	seen0, seen255 := false, false
	for i := 0; i < 20000; i++ {
		b, err := Int(src, uint8(0), uint8(255), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if b == 0 {
			seen0 = true
		}
		if b == 255 {
			seen255 = true
		}
	}
	if !seen0 || !seen255 {
		t.Fatalf("full uint8 span missing extremes: seen0=%v seen255=%v", seen0, seen255)
	}

	// 有號極值附近的小範圍：位移在 uint64 中計算，不得溢位
	for i := 0; i < 1000; i++ {
		x, err := Int(src, int64(math.MaxInt64-2), int64(math.MaxInt64), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if x < math.MaxInt64-2 {
			t.Fatalf("value %d below lower bound", x)
		}
	}
}

// TestIntNilSource 驗證 nil 來源回報 SourceUnavailable
func TestIntNilSource(t *testing.T) {
	_, err := Int[int64](nil, 0, 10, true, true)
	if err == nil {
		t.Fatal("expected error for nil source")
	}
	if !errs.IsKind(err, errs.KindSourceUnavailable) {
		t.Fatalf("expected KindSourceUnavailable, got %v", err)
	}
}

// -----------------------------------------------------------------------------
// Tests for Float (unit sampling / affine blend / policy)
// -----------------------------------------------------------------------------

// TestFloatDegenerate 驗證相等界直接回傳且不消耗 entropy
func TestFloatDegenerate(t *testing.T) {
	cs := &countSource{inner: entropy.NewFast(3)}
	v, err := Float(cs, 10.0, 10.0, true, true, Policy{})
	if err != nil {
		t.Fatal(err)
	}
	if v != 10.0 {
		t.Fatalf("expected exactly 10.0, got %v", v)
	}
	if cs.words != 0 {
		t.Fatalf("degenerate float range consumed %d words", cs.words)
	}
}

// TestFloatBoundsExtreme 驗證極端量級下結果仍在 [lo, hi] 內
func TestFloatBoundsExtreme(t *testing.T) {
	src := entropy.NewFast(13)
	for i := 0; i < 10000; i++ {
		v, err := Float(src, -1e300, 1e300, true, true, Policy{})
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite result: %v", v)
		}
		if v < -1e300 || v > 1e300 {
			t.Fatalf("value %v outside [-1e300, 1e300]", v)
		}
	}
}

// TestFloatUnitEndpoints 驗證單位區間在各模式下的端點可達性
func TestFloatUnitEndpoints(t *testing.T) {
	// incl-incl + 全 1 字組 → 53-bit 格點頂 → 正好 1.0
	v, err := Float(maxSource{}, 0.0, 1.0, true, true, Policy{})
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.0 {
		t.Fatalf("incl-incl with saturated source: expected 1.0, got %v", v)
	}

	// incl-excl 永遠嚴格小於 1
	src := entropy.NewFast(17)
	for i := 0; i < 20000; i++ {
		v, err := Float(src, 0.0, 1.0, true, false, Policy{})
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || v >= 1.0 {
			t.Fatalf("incl-excl value %v outside [0, 1)", v)
		}
	}

	// excl-incl 永遠嚴格大於 0（全 0 字組給出最小格點）
	zero := &scriptSource{words: []uint64{0}}
	v, err = Float(zero, 0.0, 1.0, false, true, Policy{})
	if err != nil {
		t.Fatal(err)
	}
	if v <= 0 {
		t.Fatalf("excl-incl with zero source: expected > 0, got %v", v)
	}
}

// TestFloatFloat32 驗證 float32 目標經 float64 混合後仍夾在界內
func TestFloatFloat32(t *testing.T) {
	src := entropy.NewFast(19)
	for i := 0; i < 5000; i++ {
		v, err := Float(src, float32(-2.5), float32(7.25), true, true, Policy{})
		if err != nil {
			t.Fatal(err)
		}
		if v < -2.5 || v > 7.25 {
			t.Fatalf("float32 value %v outside [-2.5, 7.25]", v)
		}
	}
}

// TestFloatPolicyEquivalence 驗證策略替換後與直接給有限界的行為完全一致
// 檢查項目: adjustErrors=true, posInf=1000 時 (0, +Inf) 等價於 (0, 1000)
func TestFloatPolicyEquivalence(t *testing.T) {
	pol := Policy{AdjustErrors: true, PosInf: 1000.0}
	a := entropy.NewFast(23)
	b := entropy.NewFast(23)
	for i := 0; i < 1000; i++ {
		va, err := Float(a, 0.0, math.Inf(1), true, true, pol)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := Float(b, 0.0, 1000.0, true, true, pol)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("draw %d: policy-substituted %v != direct %v", i, va, vb)
		}
	}
}

// TestFloatInvalidAfterAdjust 驗證策略替換後的界參與排序驗證
func TestFloatInvalidAfterAdjust(t *testing.T) {
	src := entropy.NewFast(29)
	// adjustErrors=false：兩個非有限界都變成 Default(0) → 0..0 exclusive 違規
	_, err := Float(src, math.Inf(-1), math.Inf(1), false, false, Policy{})
	if err == nil {
		t.Fatal("expected InvalidRange after policy substitution")
	}
	if !errs.IsKind(err, errs.KindInvalidRange) {
		t.Fatalf("expected KindInvalidRange, got %v", err)
	}

	// NaN 界 + NaN 替代值 → 排序違規
	_, err = Float(src, math.NaN(), 1.0, true, true, Policy{AdjustErrors: true, NaN: math.NaN()})
	if err == nil {
		t.Fatal("expected InvalidRange for NaN bound")
	}
}

// -----------------------------------------------------------------------------
// Tests for Policy
// -----------------------------------------------------------------------------

// TestPolicyAdjust 驗證非有限界的替換規則
func TestPolicyAdjust(t *testing.T) {
	p := Policy{AdjustErrors: true, Default: -1, PosInf: 100, NegInf: -100, NaN: 7}
	if got := p.Adjust(3.5); got != 3.5 {
		t.Fatalf("finite passthrough broken: %v", got)
	}
	if got := p.Adjust(math.Inf(1)); got != 100 {
		t.Fatalf("+Inf substitute broken: %v", got)
	}
	if got := p.Adjust(math.Inf(-1)); got != -100 {
		t.Fatalf("-Inf substitute broken: %v", got)
	}
	if got := p.Adjust(math.NaN()); got != 7 {
		t.Fatalf("NaN substitute broken: %v", got)
	}

	// adjustErrors=false：所有非有限值都落到 Default
	p.AdjustErrors = false
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := p.Adjust(v); got != -1 {
			t.Fatalf("default substitute broken for %v: got %v", v, got)
		}
	}
}

// -----------------------------------------------------------------------------
// Tests for Decimal (96-bit mantissa unit sampling)
// -----------------------------------------------------------------------------

// TestDecimalUnitRange 驗證單位區間抽樣永遠落在 [0,1]
func TestDecimalUnitRange(t *testing.T) {
	src := entropy.NewFast(31)
	for i := 0; i < 5000; i++ {
		v, err := unitDecimal(src, true, true)
		if err != nil {
			t.Fatal(err)
		}
		if v.LessThan(decimalZero) || v.GreaterThan(decimalOne) {
			t.Fatalf("unit decimal %s outside [0,1]", v)
		}
	}
}

// TestDecimalUnitUpperEndpoint 驗證 incl-incl 模式下 1 可以被精確命中
// （腳本來源給出尾數 >= 10^28 的字組，夾取後正好為 1）
func TestDecimalUnitUpperEndpoint(t *testing.T) {
	// 高位字組 3794707608 % 542101087 = 542101086 = decimalHiMax
	sat := &scriptSource{words: []uint64{0xFFFFFFFF, 0xFFFFFFFF, 3794707608}}
	v, err := unitDecimal(sat, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(decimalOne) {
		t.Fatalf("expected exactly 1, got %s", v)
	}

	// 同樣的字組在 incl-excl 模式下退到 1 - 1e-28
	sat = &scriptSource{words: []uint64{0xFFFFFFFF, 0xFFFFFFFF, 3794707608}}
	v, err = unitDecimal(sat, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(decimalOneMinusStep) {
		t.Fatalf("expected 1-1e-28, got %s", v)
	}
}

// TestDecimalRange 驗證任意範圍抽樣的界內性與退化行為
func TestDecimalRange(t *testing.T) {
	src := entropy.NewFast(37)
	lo := decimal.RequireFromString("-123.456")
	hi := decimal.RequireFromString("789.012")
	for i := 0; i < 2000; i++ {
		v, err := Decimal(src, lo, hi, true, true)
		if err != nil {
			t.Fatal(err)
		}
		if v.LessThan(lo) || v.GreaterThan(hi) {
			t.Fatalf("decimal %s outside [%s, %s]", v, lo, hi)
		}
	}

	// 退化範圍
	ten := decimal.RequireFromString("10")
	v, err := Decimal(src, ten, ten, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ten) {
		t.Fatalf("expected 10, got %s", v)
	}

	// 排序違規
	if _, err := Decimal(src, hi, lo, true, true); !errs.IsKind(err, errs.KindInvalidRange) {
		t.Fatalf("expected KindInvalidRange, got %v", err)
	}
}
