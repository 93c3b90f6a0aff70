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

// Package randlab 提供均勻亂數範圍映射的「組裝入口（assembler）」。
//
// 你可以把 Lab 視為一個持有三種 entropy 後端與一份浮點調整策略的
// runtime：它負責把下列地基組裝在一起，並提供各數值類別的抽樣入口：
//  1. entropy 後端：fast（PCG64）、audit（PCG32，可快照/還原）、
//     secure（OS CSPRNG）。演算法端一律面對 entropy.Source 介面。
//  2. 範圍映射核心（sdk/uniform）：邊界正規化、整數拒絕採樣、
//     浮點/十進位仿射混合。
//  3. Policy：浮點邊界的非有限值替換規則，以值語意持有與交換。
//
// 設計重點：
//   - 抽樣入口是套件層級的泛型函數（Int/Float/Decimal）而不是 Lab 的
//     方法：Go 的方法不能帶型別參數。Lab 只承載非泛型操作
//     （Bytes/Reseed/策略存取）。
//   - Lab 不做內部鎖定。同一個 Lab 若要被多個 goroutine 共用，
//     呼叫端必須自行協調（合約，與 entropy 套件一致）。
//   - 測試可直接對 sdk/uniform 注入自製 Source，不需要經過 Lab，
//     也就不需要碰任何全域狀態。
//
// 典型使用情境：
//
//	lab := randlab.New(seed)
//	n, err := randlab.Int(lab, entropy.KindFast, -5, 5, true, true)
//	f, err := randlab.Float(lab, entropy.KindSecure, 0.0, 1000.0, true, false)
package randlab

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/sdk/uniform"
)

// Lab 持有三個 entropy 後端單例與程序層級的調整策略。
type Lab struct {
	fast   *entropy.Fast
	audit  *entropy.Audit
	secure *entropy.Secure
	policy uniform.Policy
}

// New 以指定 seed 建立 Lab。
// 兩個確定性後端各自以 seed 的衍生值初始化（相同 seed 可重現）。
func New(seed int64) *Lab {
	return &Lab{
		fast:   entropy.NewFast(seed),
		audit:  entropy.NewAudit(seed),
		secure: entropy.NewSecure(),
	}
}

// NewAuto 使用加密隨機來源產生 seed，建立 Lab。
func NewAuto() (*Lab, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return nil, errs.WrapKind(err, errs.KindSourceUnavailable, "auto seed failed")
	}
	return New(seed.Int64()), nil
}

// Source 回傳指定種類的後端。
func (l *Lab) Source(k entropy.Kind) (entropy.Source, error) {
	if l == nil {
		return nil, errs.NewKind(errs.KindSourceUnavailable, "nil lab")
	}
	switch k {
	case entropy.KindFast:
		return l.fast, nil
	case entropy.KindAudit:
		return l.audit, nil
	case entropy.KindSecure:
		return l.secure, nil
	default:
		return nil, errs.Kindf(errs.KindSourceUnavailable, "unknown source kind: %d", k)
	}
}

// Bytes 從指定後端抽 n 個隨機位元組。
func (l *Lab) Bytes(k entropy.Kind, n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.Warnf("negative byte count: %d", n)
	}
	src, err := l.Source(k)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := src.Fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Reseed 重設指定後端的種子。
// secure 後端沒有種子概念：對它 reseed 是合法的 no-op，不回報錯誤。
// 重設只影響之後的抽樣。
func (l *Lab) Reseed(k entropy.Kind, seed int64) error {
	src, err := l.Source(k)
	if err != nil {
		return err
	}
	if r, ok := src.(entropy.Reseeder); ok {
		r.Reseed(seed)
	}
	return nil
}

// SetPolicy 以值複製替換程序層級的調整策略。
// 呼叫端之後對自己手上 Policy 的任何改動都不會影響 Lab（值語意）。
func (l *Lab) SetPolicy(p uniform.Policy) {
	l.policy = p
}

// Policy 回傳目前策略的值複製。
func (l *Lab) Policy() uniform.Policy {
	return l.policy
}

// Int 從 Lab 指定後端抽一個範圍內均勻整數。
func Int[T uniform.Integers](l *Lab, k entropy.Kind, min, max T, minIncl, maxIncl bool) (T, error) {
	src, err := l.Source(k)
	if err != nil {
		return 0, err
	}
	return uniform.Int(src, min, max, minIncl, maxIncl)
}

// Float 從 Lab 指定後端抽一個範圍內均勻浮點數（套用 Lab 的策略）。
func Float[T uniform.Floaters](l *Lab, k entropy.Kind, min, max T, minIncl, maxIncl bool) (T, error) {
	src, err := l.Source(k)
	if err != nil {
		return 0, err
	}
	return uniform.Float(src, min, max, minIncl, maxIncl, l.policy)
}

// FloatWith 與 Float 相同，但以指定策略取代 Lab 的策略（單次呼叫生效）。
func FloatWith[T uniform.Floaters](l *Lab, k entropy.Kind, min, max T, minIncl, maxIncl bool, pol uniform.Policy) (T, error) {
	src, err := l.Source(k)
	if err != nil {
		return 0, err
	}
	return uniform.Float(src, min, max, minIncl, maxIncl, pol)
}

// Decimal 從 Lab 指定後端抽一個範圍內均勻十進位數。
func Decimal(l *Lab, k entropy.Kind, min, max decimal.Decimal, minIncl, maxIncl bool) (decimal.Decimal, error) {
	src, err := l.Source(k)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return uniform.Decimal(src, min, max, minIncl, maxIncl)
}
