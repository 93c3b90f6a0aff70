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

package dto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/uniform"
)

// maxDraws 是單一請求可要求的最大抽樣筆數，避免過大回應拖垮服務。
const maxDraws = 10000

// maxBody 是 POST body 的大小上限（1 MiB）。
const maxBody = 1 << 20

// IntRequest 是整數抽樣請求。
//
// 開閉區間以 *_excl 表達：缺省（false）即 inclusive，與核心的預設
// 語意一致，也避免「缺欄位」和「明確 false」的雙重語意。
//
// Type 指定目標型別（int8/int16/int32/int64/uint8/uint16/uint32/uint64），
// 缺省視為 int64。Min/Max 以十進位字串承載，讓 uint64 的高半值域
// 不會被 JSON 的 int64 解析截斷。
type IntRequest struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	MinExcl bool   `json:"min_excl"`
	MaxExcl bool   `json:"max_excl"`
	Count   int    `json:"count"`
}

// FloatRequest 是浮點抽樣請求。
//
// Min/Max 以字串承載並用 strconv.ParseFloat 解析：JSON 數字無法表示
// ±Inf/NaN，而那正是調整策略（policy）要處理的輸入。
//
// Policy / PolicyOverride Contract（避免「零值 policy」的雙重語意）：
//   - PolicyOverride 為 false（或未提供）：使用程序層級策略；
//     此時 Policy 必須省略，否則視為 request 格式錯誤。
//   - PolicyOverride 為 true：本次呼叫改用 Policy；Policy 若省略，
//     視為 InvalidPolicy（必要的策略參數缺漏）。
type FloatRequest struct {
	Source         string          `json:"source"`
	Min            string          `json:"min"`
	Max            string          `json:"max"`
	MinExcl        bool            `json:"min_excl"`
	MaxExcl        bool            `json:"max_excl"`
	Count          int             `json:"count"`
	PolicyOverride bool            `json:"policy_override,omitempty"`
	Policy         *uniform.Policy `json:"policy,omitempty"`
}

// DecimalRequest 是十進位抽樣請求；Min/Max 為十進位字串。
type DecimalRequest struct {
	Source  string `json:"source"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	MinExcl bool   `json:"min_excl"`
	MaxExcl bool   `json:"max_excl"`
	Count   int    `json:"count"`
}

// BytesRequest 是隨機位元組請求。
type BytesRequest struct {
	Source   string `json:"source"`
	Count    int    `json:"count"`
	Encoding string `json:"encoding"`
}

// ReseedRequest 是重設種子請求。
// Seed（int64 string）；空字串代表由伺服器以 crypto/rand 產生。
type ReseedRequest struct {
	Source string `json:"source"`
	Seed   string `json:"seed"`
}

// DecodeIntRequest 把 HTTP 請求解碼成 IntRequest。
//
// 支援：
//   - GET：從 query string 讀取參數（source/type/min/max/min_excl/max_excl/count）。
//   - POST：從 JSON body 反序列化。
//
// POST 對未知欄位採用嚴格拒絕（DisallowUnknownFields），避免靜默丟資料；
// body 大小上限 1 MiB。
func DecodeIntRequest(r *http.Request) (*IntRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(IntRequest)
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Source = q.Get("source")
		req.Type = q.Get("type")
		req.Min = q.Get("min")
		req.Max = q.Get("max")
		var err error
		if req.MinExcl, err = parseBool(q.Get("min_excl")); err != nil {
			return nil, err
		}
		if req.MaxExcl, err = parseBool(q.Get("max_excl")); err != nil {
			return nil, err
		}
		if req.Count, err = parseCount(q.Get("count")); err != nil {
			return nil, err
		}
	case http.MethodPost:
		if err := decodeStrictJSON(r, req); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Warnf("unsupported method: %s", r.Method)
	}
	if err := normCount(&req.Count); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeFloatRequest 把 HTTP 請求解碼成 FloatRequest（合約同 DecodeIntRequest）。
func DecodeFloatRequest(r *http.Request) (*FloatRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(FloatRequest)
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Source = q.Get("source")
		req.Min = q.Get("min")
		req.Max = q.Get("max")
		var err error
		if req.MinExcl, err = parseBool(q.Get("min_excl")); err != nil {
			return nil, err
		}
		if req.MaxExcl, err = parseBool(q.Get("max_excl")); err != nil {
			return nil, err
		}
		if req.Count, err = parseCount(q.Get("count")); err != nil {
			return nil, err
		}
		// GET 不支援 policy override（巢狀參數一律走 POST）。
	case http.MethodPost:
		if err := decodeStrictJSON(r, req); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Warnf("unsupported method: %s", r.Method)
	}
	if err := normCount(&req.Count); err != nil {
		return nil, err
	}
	if !req.PolicyOverride && req.Policy != nil {
		return nil, errs.NewWarn("policy provided without policy_override")
	}
	if req.PolicyOverride && req.Policy == nil {
		return nil, errs.NewKind(errs.KindInvalidPolicy, "policy_override set but policy missing")
	}
	return req, nil
}

// DecodeDecimalRequest 把 HTTP 請求解碼成 DecimalRequest（合約同 DecodeIntRequest）。
func DecodeDecimalRequest(r *http.Request) (*DecimalRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(DecimalRequest)
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Source = q.Get("source")
		req.Min = q.Get("min")
		req.Max = q.Get("max")
		var err error
		if req.MinExcl, err = parseBool(q.Get("min_excl")); err != nil {
			return nil, err
		}
		if req.MaxExcl, err = parseBool(q.Get("max_excl")); err != nil {
			return nil, err
		}
		if req.Count, err = parseCount(q.Get("count")); err != nil {
			return nil, err
		}
	case http.MethodPost:
		if err := decodeStrictJSON(r, req); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Warnf("unsupported method: %s", r.Method)
	}
	if err := normCount(&req.Count); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeBytesRequest 把 HTTP 請求解碼成 BytesRequest。
func DecodeBytesRequest(r *http.Request) (*BytesRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(BytesRequest)
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Source = q.Get("source")
		req.Encoding = q.Get("encoding")
		var err error
		if req.Count, err = parseCount(q.Get("count")); err != nil {
			return nil, err
		}
	case http.MethodPost:
		if err := decodeStrictJSON(r, req); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Warnf("unsupported method: %s", r.Method)
	}
	if err := normCount(&req.Count); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeReseedRequest 把 HTTP 請求解碼成 ReseedRequest（僅 POST）。
func DecodeReseedRequest(r *http.Request) (*ReseedRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	if r.Method != http.MethodPost {
		return nil, errs.Warnf("unsupported method: %s", r.Method)
	}
	req := new(ReseedRequest)
	if err := decodeStrictJSON(r, req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodePolicyRequest 把 POST body 解碼成 Policy（策略替換端點用）。
func DecodePolicyRequest(r *http.Request) (uniform.Policy, error) {
	var p uniform.Policy
	if r == nil {
		return p, errs.NewWarn("nil request")
	}
	if r.Method != http.MethodPost {
		return p, errs.Warnf("unsupported method: %s", r.Method)
	}
	if r.Body == nil || r.ContentLength == 0 {
		return p, errs.NewKind(errs.KindInvalidPolicy, "policy body missing")
	}
	if err := decodeStrictJSON(r, &p); err != nil {
		return p, err
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// 解析工具
// -----------------------------------------------------------------------------

func decodeStrictJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBody)
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errs.Wrap(errs.NewWarn(err.Error()), "decode request body failed")
	}
	return nil
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errs.Warnf("invalid bool: %q", s)
	}
	return b, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Warnf("invalid count: %q", s)
	}
	return n, nil
}

// normCount 套用筆數預設值與上限：缺省為 1，合法區間 [1, maxDraws]。
func normCount(n *int) error {
	if *n == 0 {
		*n = 1
	}
	if *n < 1 || *n > maxDraws {
		return errs.Warnf("count %d outside [1, %d]", *n, maxDraws)
	}
	return nil
}
