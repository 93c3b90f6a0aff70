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

package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// ============================================================
// ** DrawHandler **
// ============================================================

// DrawHandler 服務四個抽樣端點（int/float/decimal/bytes）。
//
// 這一層是「序列化邊界」：JSON 沒有定寬整數型別，所以 type 參數在這裡
// 攤平成字串再分派到泛型核心。核心本身沒有任何 per-type 分支。
type DrawHandler struct {
	lab *randlab.Lab
}

func NewDrawHandler(sCfg *svrcfg.SvrCfg) *DrawHandler {
	return &DrawHandler{lab: sCfg.Lab}
}

// Int 處理整數抽樣請求。
func (h *DrawHandler) Int(w http.ResponseWriter, q *http.Request) {
	req, err := dto.DecodeIntRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	kind, err := entropy.ParseKind(req.Source)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	res, err := h.drawInts(kind, req)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	writeJSON(w, res)
}

// Float 處理浮點抽樣請求。
func (h *DrawHandler) Float(w http.ResponseWriter, q *http.Request) {
	req, err := dto.DecodeFloatRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	kind, err := entropy.ParseKind(req.Source)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	min, err := parseFloatBound(req.Min, "min")
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	max, err := parseFloatBound(req.Max, "max")
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	pol := h.lab.Policy()
	if req.PolicyOverride {
		pol = *req.Policy
	}

	values := make([]float64, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		v, err := randlab.FloatWith(h.lab, kind, min, max, !req.MinExcl, !req.MaxExcl, pol)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		values = append(values, v)
	}
	writeJSON(w, &dto.FloatResult{
		Source:  kind.String(),
		Min:     req.Min,
		Max:     req.Max,
		MinExcl: req.MinExcl,
		MaxExcl: req.MaxExcl,
		Values:  values,
	})
}

// Decimal 處理十進位抽樣請求。
func (h *DrawHandler) Decimal(w http.ResponseWriter, q *http.Request) {
	req, err := dto.DecodeDecimalRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	kind, err := entropy.ParseKind(req.Source)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	min, err := decimal.NewFromString(req.Min)
	if err != nil {
		httperr.Errs(w, errs.Warnf("invalid min decimal: %q", req.Min))
		return
	}
	max, err := decimal.NewFromString(req.Max)
	if err != nil {
		httperr.Errs(w, errs.Warnf("invalid max decimal: %q", req.Max))
		return
	}

	values := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		v, err := randlab.Decimal(h.lab, kind, min, max, !req.MinExcl, !req.MaxExcl)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		values = append(values, v.String())
	}
	writeJSON(w, &dto.DecimalResult{
		Source:  kind.String(),
		Min:     req.Min,
		Max:     req.Max,
		MinExcl: req.MinExcl,
		MaxExcl: req.MaxExcl,
		Values:  values,
	})
}

// Bytes 處理隨機位元組請求。
func (h *DrawHandler) Bytes(w http.ResponseWriter, q *http.Request) {
	req, err := dto.DecodeBytesRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	kind, err := entropy.ParseKind(req.Source)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	buf, err := h.lab.Bytes(kind, req.Count)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	data, err := corefmt.EncodeBytes(buf, corefmt.Encoding(req.Encoding))
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	writeJSON(w, &dto.BytesResult{
		Source:   kind.String(),
		Count:    req.Count,
		Encoding: string(corefmt.Encoding(req.Encoding)),
		Data:     data,
	})
}

// -----------------------------------------------------------------------------
// 內部：型別分派與解析
// -----------------------------------------------------------------------------

// drawInts 依 type 參數把請求分派到對應寬度的泛型呼叫。
func (h *DrawHandler) drawInts(kind entropy.Kind, req *dto.IntRequest) (*dto.IntResult, error) {
	// 缺省型別先攤平成實效值，後續的錯誤訊息與回應都用同一個名字。
	if req.Type == "" {
		req.Type = "int64"
	}

	res := &dto.IntResult{
		Source:  kind.String(),
		Min:     req.Min,
		Max:     req.Max,
		MinExcl: req.MinExcl,
		MaxExcl: req.MaxExcl,
	}

	switch req.Type {
	case "int64":
		res.Width, res.Signed = 64, true
		return res, drawSigned[int64](h, kind, req, 64, res)
	case "int32":
		res.Width, res.Signed = 32, true
		return res, drawSigned[int32](h, kind, req, 32, res)
	case "int16":
		res.Width, res.Signed = 16, true
		return res, drawSigned[int16](h, kind, req, 16, res)
	case "int8":
		res.Width, res.Signed = 8, true
		return res, drawSigned[int8](h, kind, req, 8, res)
	case "uint64":
		res.Width, res.Signed = 64, false
		return res, drawUnsigned[uint64](h, kind, req, 64, res)
	case "uint32":
		res.Width, res.Signed = 32, false
		return res, drawUnsigned[uint32](h, kind, req, 32, res)
	case "uint16":
		res.Width, res.Signed = 16, false
		return res, drawUnsigned[uint16](h, kind, req, 16, res)
	case "uint8":
		res.Width, res.Signed = 8, false
		return res, drawUnsigned[uint8](h, kind, req, 8, res)
	default:
		return nil, errs.Warnf("unknown integer type: %q", req.Type)
	}
}

func drawSigned[T int8 | int16 | int32 | int64](h *DrawHandler, kind entropy.Kind, req *dto.IntRequest, bitSize int, res *dto.IntResult) error {
	min, err := strconv.ParseInt(req.Min, 10, bitSize)
	if err != nil {
		return errs.Warnf("invalid min for %s: %q", req.Type, req.Min)
	}
	max, err := strconv.ParseInt(req.Max, 10, bitSize)
	if err != nil {
		return errs.Warnf("invalid max for %s: %q", req.Type, req.Max)
	}

	res.Values = make([]int64, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		v, err := randlab.Int(h.lab, kind, T(min), T(max), !req.MinExcl, !req.MaxExcl)
		if err != nil {
			return err
		}
		res.Values = append(res.Values, int64(v))
	}
	return nil
}

func drawUnsigned[T uint8 | uint16 | uint32 | uint64](h *DrawHandler, kind entropy.Kind, req *dto.IntRequest, bitSize int, res *dto.IntResult) error {
	min, err := strconv.ParseUint(req.Min, 10, bitSize)
	if err != nil {
		return errs.Warnf("invalid min for %s: %q", req.Type, req.Min)
	}
	max, err := strconv.ParseUint(req.Max, 10, bitSize)
	if err != nil {
		return errs.Warnf("invalid max for %s: %q", req.Type, req.Max)
	}

	res.UValues = make([]uint64, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		v, err := randlab.Int(h.lab, kind, T(min), T(max), !req.MinExcl, !req.MaxExcl)
		if err != nil {
			return err
		}
		res.UValues = append(res.UValues, uint64(v))
	}
	return nil
}

func parseFloatBound(s, name string) (float64, error) {
	if s == "" {
		return 0, errs.Warnf("%s is required", name)
	}
	// ParseFloat 接受 "Inf"/"+Inf"/"-Inf"/"NaN"，非有限界交給 policy 處理。
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.Warnf("invalid %s: %q", name, s)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		httperr.Errs(w, err)
	}
}
