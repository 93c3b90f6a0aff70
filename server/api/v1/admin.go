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
	"crypto/rand"
	"math"
	"math/big"
	"net/http"
	"strconv"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// ============================================================
// ** AdminHandler **
// ============================================================

// AdminHandler 服務 reseed 與策略端點。
type AdminHandler struct {
	lab *randlab.Lab
}

func NewAdminHandler(sCfg *svrcfg.SvrCfg) *AdminHandler {
	return &AdminHandler{lab: sCfg.Lab}
}

// Reseed 重設指定後端的種子。
//
// Seed 語意：
//   - 空字串：由伺服器以 crypto/rand 產生。
//   - int64 十進位字串：deterministic 起始。
//
// secure 後端沒有種子概念：請求被合法忽略，Applied 回報 false。
func (h *AdminHandler) Reseed(w http.ResponseWriter, q *http.Request) {
	req, err := dto.DecodeReseedRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	kind, err := entropy.ParseKind(req.Source)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	var seed int64
	if req.Seed == "" {
		s, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			httperr.Errs(w, errs.WrapKind(err, errs.KindSourceUnavailable, "auto seed failed"))
			return
		}
		seed = s.Int64()
	} else {
		seed, err = strconv.ParseInt(req.Seed, 10, 64)
		if err != nil {
			httperr.Errs(w, errs.Warnf("invalid seed: %q", req.Seed))
			return
		}
	}

	src, err := h.lab.Source(kind)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	_, applied := src.(entropy.Reseeder)
	if err := h.lab.Reseed(kind, seed); err != nil {
		httperr.Errs(w, err)
		return
	}

	res := &dto.ReseedResult{Source: kind.String(), Applied: applied}
	if applied {
		res.Seed = seed
	}
	writeJSON(w, res)
}

// GetPolicy 回傳目前策略的值複製。
func (h *AdminHandler) GetPolicy(w http.ResponseWriter, q *http.Request) {
	writeJSON(w, &dto.PolicyResult{Policy: h.lab.Policy()})
}

// SetPolicy 以請求 body 的策略替換程序層級策略（整份替換，非逐欄合併）。
func (h *AdminHandler) SetPolicy(w http.ResponseWriter, q *http.Request) {
	p, err := dto.DecodePolicyRequest(q)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	h.lab.SetPolicy(p)
	writeJSON(w, &dto.PolicyResult{Policy: h.lab.Policy()})
}
