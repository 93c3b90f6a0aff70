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

package index

import (
	"encoding/json"
	"net/http"
)

// IndexHandlerFn 回傳服務簡介與可用端點清單（機器可讀的自我描述）。
func IndexHandlerFn(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"service": "randlab",
		"endpoints": []string{
			"GET|POST /v1/int",
			"GET|POST /v1/float",
			"GET|POST /v1/decimal",
			"GET|POST /v1/bytes",
			"POST /v1/reseed",
			"GET|POST /v1/policy",
		},
		"sources": []string{"fast", "audit", "secure"},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(info)
}
