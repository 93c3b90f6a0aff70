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

package randlab

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/sdk/uniform"
)

// TestLabDeterminism 驗證相同 seed 的 Lab 產生相同抽樣序列
func TestLabDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 200; i++ {
		va, err := Int(a, entropy.KindFast, int64(-100), int64(100), true, true)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := Int(b, entropy.KindFast, int64(-100), int64(100), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("same-seed labs diverged at draw %d: %d vs %d", i, va, vb)
		}
	}
}

// TestLabSourceIsolation 驗證 fast 和 audit 各自獨立推進
func TestLabSourceIsolation(t *testing.T) {
	a := New(7)
	b := New(7)

	// a 先在 audit 上抽一批，不應影響 fast 的序列
	for i := 0; i < 50; i++ {
		if _, err := Int(a, entropy.KindAudit, int64(0), int64(9), true, true); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 50; i++ {
		va, err := Int(a, entropy.KindFast, int64(0), int64(999), true, true)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := Int(b, entropy.KindFast, int64(0), int64(999), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("audit draws leaked into fast sequence at draw %d", i)
		}
	}
}

// TestLabReseed 驗證 reseed 後的序列等同於以該 seed 新建的 Lab
func TestLabReseed(t *testing.T) {
	a := New(1)
	for i := 0; i < 10; i++ {
		if _, err := Int(a, entropy.KindFast, int64(0), int64(99), true, true); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Reseed(entropy.KindFast, 555); err != nil {
		t.Fatal(err)
	}

	b := New(555)
	for i := 0; i < 50; i++ {
		va, err := Int(a, entropy.KindFast, int64(0), int64(99), true, true)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := Int(b, entropy.KindFast, int64(0), int64(99), true, true)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("reseeded sequence diverged at draw %d", i)
		}
	}

	// secure 的 reseed 是合法 no-op
	if err := a.Reseed(entropy.KindSecure, 1); err != nil {
		t.Fatalf("reseed on secure must be a no-op, got %v", err)
	}
}

// TestLabPolicyValueSemantics 驗證策略以值複製持有（copy-not-alias）
func TestLabPolicyValueSemantics(t *testing.T) {
	lab := New(3)
	p := uniform.Policy{AdjustErrors: true, PosInf: 100}
	lab.SetPolicy(p)

	// 呼叫端事後改自己的副本，不影響 Lab
	p.PosInf = -1
	if got := lab.Policy(); got.PosInf != 100 {
		t.Fatalf("caller mutation leaked into lab policy: %+v", got)
	}

	// 取出的副本同樣隔離
	q := lab.Policy()
	q.AdjustErrors = false
	if got := lab.Policy(); !got.AdjustErrors {
		t.Fatal("returned policy copy aliased lab state")
	}
}

// TestLabFloatUsesPolicy 驗證 Float 套用 Lab 策略、FloatWith 套用呼叫端策略
func TestLabFloatUsesPolicy(t *testing.T) {
	lab := New(9)
	lab.SetPolicy(uniform.Policy{AdjustErrors: true, PosInf: 50})

	ref := New(9)
	for i := 0; i < 100; i++ {
		va, err := Float(lab, entropy.KindFast, 0.0, math.Inf(1), true, true)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := Float(ref, entropy.KindFast, 0.0, 50.0, true, true)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("lab policy not applied at draw %d: %v vs %v", i, va, vb)
		}
	}

	// FloatWith 覆寫單次呼叫的策略，不動 Lab 的策略
	pol := uniform.Policy{AdjustErrors: true, PosInf: 10}
	v, err := FloatWith(lab, entropy.KindFast, 0.0, math.Inf(1), true, true, pol)
	if err != nil {
		t.Fatal(err)
	}
	if v < 0 || v > 10 {
		t.Fatalf("override policy not applied: %v", v)
	}
	if lab.Policy().PosInf != 50 {
		t.Fatal("FloatWith must not mutate lab policy")
	}
}

// TestLabDecimal 驗證十進位入口的界內性
func TestLabDecimal(t *testing.T) {
	lab := New(11)
	lo := decimal.RequireFromString("0")
	hi := decimal.RequireFromString("1")
	for i := 0; i < 500; i++ {
		v, err := Decimal(lab, entropy.KindAudit, lo, hi, true, true)
		if err != nil {
			t.Fatal(err)
		}
		if v.LessThan(lo) || v.GreaterThan(hi) {
			t.Fatalf("decimal %s outside [0, 1]", v)
		}
	}
}

// TestLabBytes 驗證位元組抽取的長度與參數檢查
func TestLabBytes(t *testing.T) {
	lab := New(13)
	for _, k := range []entropy.Kind{entropy.KindFast, entropy.KindAudit, entropy.KindSecure} {
		b, err := lab.Bytes(k, 32)
		if err != nil {
			t.Fatalf("[%v] %v", k, err)
		}
		if len(b) != 32 {
			t.Fatalf("[%v] expected 32 bytes, got %d", k, len(b))
		}
	}

	if _, err := lab.Bytes(entropy.KindFast, -1); err == nil {
		t.Fatal("expected error for negative byte count")
	}
	b, err := lab.Bytes(entropy.KindFast, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0 {
		t.Fatal("zero-length request must return empty slice")
	}
}

// TestLabNewAuto 驗證自動種子建構
func TestLabNewAuto(t *testing.T) {
	lab, err := NewAuto()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Int(lab, entropy.KindFast, int64(0), int64(9), true, true); err != nil {
		t.Fatal(err)
	}
}
