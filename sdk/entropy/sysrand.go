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

package entropy

import (
	"crypto/rand"
	"io"

	"github.com/zintix-labs/randlab/errs"
)

// Secure 是 OS CSPRNG 後端（crypto/rand）。
//
// 特性：
//   - 不可重設種子：不實作 Reseeder，Lab 對它的 reseed 請求會被忽略。
//   - 不可快照：OS entropy pool 沒有可序列化的狀態。
//   - Fill 可能在 OS 收集 entropy 時短暫阻塞；失敗時回傳
//     KindSourceUnavailable 分類的錯誤（核心不重試，由呼叫端決定）。
//
// randlab 只把它當作不透明的位元供應者，不對其密碼學性質做任何承諾。
type Secure struct{}

// NewSecure 建立 Secure 來源。
func NewSecure() *Secure {
	return &Secure{}
}

// Fill 以 OS 隨機位元組填滿 p。
func (s *Secure) Fill(p []byte) error {
	if _, err := io.ReadFull(rand.Reader, p); err != nil {
		return errs.WrapKind(err, errs.KindSourceUnavailable, "os entropy read failed")
	}
	return nil
}

// Word 由 Fill 推導，小端組字。
func (s *Secure) Word(widthBits uint) (uint64, error) {
	return WordFromFill(s, widthBits)
}
