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

// Package dto 定義 HTTP 邊界的請求/回應結構與解碼邏輯。
//
// 這裡只負責「解碼（decode）」與基本型別轉換，不做抽樣語意的校驗；
// 範圍合法性（min/max 排序、開閉區間）由核心（sdk/uniform）判定，
// 錯誤以 errs 分級回報後在 server/httperr 映射成狀態碼。
package dto

import (
	"github.com/zintix-labs/randlab/sdk/uniform"
)

// IntResult 是整數抽樣的回應。
// 界值以十進位字串回聲（echo），和請求端同一個理由：uint64 的高半值域
// 放進 int64 JSON 欄位會翻成負數。
type IntResult struct {
	Source  string   `json:"source"`            // 使用的 entropy 後端
	Width   int      `json:"width"`             // 目標整數寬度（8/16/32/64）
	Signed  bool     `json:"signed"`            // 是否有號
	Min     string   `json:"min"`               // 原始（未正規化）低界，十進位字串
	Max     string   `json:"max"`               // 原始（未正規化）高界，十進位字串
	MinExcl bool     `json:"min_excl"`          // 低界是否不含
	MaxExcl bool     `json:"max_excl"`          // 高界是否不含
	Values  []int64  `json:"values,omitempty"`  // 有號結果
	UValues []uint64 `json:"uvalues,omitempty"` // 無號結果
}

// FloatResult 是浮點抽樣的回應。
// 界值以字串承載：JSON 數字無法表示 ±Inf/NaN，而策略替換（policy）
// 的輸入恰恰是這些值。
type FloatResult struct {
	Source  string    `json:"source"`
	Min     string    `json:"min"`
	Max     string    `json:"max"`
	MinExcl bool      `json:"min_excl"`
	MaxExcl bool      `json:"max_excl"`
	Values  []float64 `json:"values"`
}

// DecimalResult 是十進位抽樣的回應；值一律以十進位字串承載，
// 避免 JSON 浮點轉換破壞 28 位精度。
type DecimalResult struct {
	Source  string   `json:"source"`
	Min     string   `json:"min"`
	Max     string   `json:"max"`
	MinExcl bool     `json:"min_excl"`
	MaxExcl bool     `json:"max_excl"`
	Values  []string `json:"values"`
}

// BytesResult 是隨機位元組的回應。
type BytesResult struct {
	Source   string `json:"source"`
	Count    int    `json:"count"`
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

// ReseedResult 回報 reseed 的實際效果。
// Applied 為 false 代表該後端沒有種子概念（secure），請求被合法忽略。
type ReseedResult struct {
	Source  string `json:"source"`
	Applied bool   `json:"applied"`
	Seed    int64  `json:"seed,omitempty"`
}

// PolicyResult 是策略讀取/替換的回應；永遠是值複製，
// 與運行中的策略不共享任何參考。
type PolicyResult struct {
	Policy uniform.Policy `json:"policy"`
}
