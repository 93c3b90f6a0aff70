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

// Package stats 提供抽樣結果的均勻性檢定與報告輸出。
//
// 核心是卡方適合度檢定（chi-squared goodness-of-fit）：對一個小範圍的
// 整數抽樣結果計數，對照均勻分佈的期望次數，回報統計量與 p-value。
// cmd/run 的批次檢查器與 sdk/uniform 的測試共用這一套。
package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/randlab/errs"
)

// Freq 對 [lo, lo+k) 的整數抽樣結果做計數。
type Freq struct {
	lo     int64
	counts []int
	n      int
}

// NewFreq 建立涵蓋 [lo, hi] 共 hi-lo+1 個桶的計數器。
func NewFreq(lo, hi int64) (*Freq, error) {
	if hi < lo {
		return nil, errs.Warnf("freq bucket range [%d, %d] is empty", lo, hi)
	}
	k := hi - lo + 1
	if k > 1<<20 {
		return nil, errs.Warnf("freq bucket count %d too large", k)
	}
	return &Freq{lo: lo, counts: make([]int, k)}, nil
}

// Add 記錄一個觀測值；範圍外的值回報 Warn 級錯誤。
func (f *Freq) Add(v int64) error {
	idx := v - f.lo
	if idx < 0 || idx >= int64(len(f.counts)) {
		return errs.Warnf("observation %d outside bucket range", v)
	}
	f.counts[idx]++
	f.n++
	return nil
}

// Counts 回傳各桶的觀測次數（底層 slice，呼叫端不可修改）。
func (f *Freq) Counts() []int { return f.counts }

// N 回傳觀測總數。
func (f *Freq) N() int { return f.n }

// GOF 是一次卡方適合度檢定的結果。
type GOF struct {
	ChiSquare float64 // 卡方統計量
	DF        float64 // 自由度（桶數 - 1）
	PValue    float64 // 對照卡方分佈的右尾機率
	N         int     // 觀測總數
	Buckets   int     // 桶數
}

// Uniform 判定檢定是否「未拒絕」均勻假設（p-value 高於顯著水準 alpha）。
func (g GOF) Uniform(alpha float64) bool {
	return g.PValue > alpha
}

// ChiSquareUniform 對計數結果執行對均勻分佈的卡方適合度檢定。
//
// 期望次數為 n/k（每桶等量）。經驗法則要求每桶期望至少 5，否則卡方
// 近似不可靠，回報 Warn 級錯誤由呼叫端增加樣本數。
func ChiSquareUniform(f *Freq) (GOF, error) {
	k := len(f.counts)
	if k < 2 {
		return GOF{}, errs.Warnf("need at least 2 buckets, got %d", k)
	}
	expected := float64(f.n) / float64(k)
	if expected < 5 {
		return GOF{}, errs.Warnf("expected count per bucket %.2f below 5; draw more samples", expected)
	}

	var chi float64
	for _, c := range f.counts {
		d := float64(c) - expected
		chi += d * d / expected
	}

	df := float64(k - 1)
	dist := distuv.ChiSquared{K: df}
	return GOF{
		ChiSquare: chi,
		DF:        df,
		PValue:    dist.Survival(chi),
		N:         f.n,
		Buckets:   k,
	}, nil
}
