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

package errs

import (
	"errors"
	"fmt"
)

// ErrLevel : Error 分級，使最上層理解問題嚴重程度
type ErrLevel uint8

const (
	None ErrLevel = iota
	Fatal
	Warn
	Log
)

var errLvMap = map[ErrLevel]string{
	None:  "",
	Fatal: "fatal",
	Warn:  "warn",
	Log:   "log",
}

func ErrLv(errlv ErrLevel) string {
	if str, ok := errLvMap[errlv]; ok {
		return str
	}
	return ""
}

// Kind 是錯誤的語意分類。
//
// 與 ErrLevel 的分工：
//   - ErrLevel 回答「多嚴重」（上層要 400 還是 500、要不要告警）。
//   - Kind 回答「是哪一類」（呼叫端能不能修正後重送）。
//
// randlab 的核心只會產生三種 Kind：
//   - KindSourceUnavailable：亂數來源不存在或無法供應位元（通常是 OS entropy 失敗）。
//   - KindInvalidRange：min/max 排序違反所要求的開閉區間語意。
//   - KindInvalidPolicy：必要的浮點調整策略缺漏。
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSourceUnavailable
	KindInvalidRange
	KindInvalidPolicy
)

var kindMap = map[Kind]string{
	KindUnknown:           "",
	KindSourceUnavailable: "source_unavailable",
	KindInvalidRange:      "invalid_range",
	KindInvalidPolicy:     "invalid_policy",
}

// E 是統一的錯誤型別。
// Message 為經過樣板格式化後的主訊息；Extra 為呼叫端可追加的額外上下文；
// Cause 可串接下層錯誤（wrap）；ErrLv 表示嚴重程度；Kind 表示語意分類。
type E struct {
	Message string
	Extra   string
	Cause   error
	ErrLv   ErrLevel
	Kind    Kind
}

// Error 實作 error 介面並回傳格式化後的錯誤訊息。
func (e *E) Error() string {
	base := fmt.Sprintf("errlv=%s %s", ErrLv(e.ErrLv), e.Message)
	if k := kindMap[e.Kind]; k != "" {
		base = fmt.Sprintf("errlv=%s kind=%s %s", ErrLv(e.ErrLv), k, e.Message)
	}
	if e.Extra != "" {
		base += " | extra: " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

// New 依嚴重度建立錯誤
func New(errLv ErrLevel, msg string) *E {
	return &E{Message: msg, ErrLv: errLv}
}

func NewFatal(msg string) *E {
	return &E{Message: msg, ErrLv: Fatal}
}

func NewWarn(msg string) *E {
	return &E{Message: msg, ErrLv: Warn}
}

func Fatalf(format string, a ...any) *E {
	return NewFatal(fmt.Sprintf(format, a...))
}

func Warnf(format string, a ...any) *E {
	return NewWarn(fmt.Sprintf(format, a...))
}

// NewKind 建立帶語意分類的錯誤。
//
// ErrLevel 由 Kind 決定：
//   - KindSourceUnavailable 是系統面問題 → Fatal。
//   - KindInvalidRange / KindInvalidPolicy 是呼叫端輸入問題 → Warn。
func NewKind(kind Kind, msg string) *E {
	lv := Fatal
	switch kind {
	case KindInvalidRange, KindInvalidPolicy:
		lv = Warn
	}
	return &E{Message: msg, ErrLv: lv, Kind: kind}
}

func Kindf(kind Kind, format string, a ...any) *E {
	return NewKind(kind, fmt.Sprintf(format, a...))
}

// NewWithExtra 與 New 相同，但可附加額外上下文字串（不影響主訊息）。
func NewWithExtra(errLv ErrLevel, msg string, extra string) *E {
	e := New(errLv, msg)
	e.Extra = extra
	return e
}

// Wrap 使用給定的訊息包裝底層錯誤，建立一個 *E。
//
// ErrLevel / Kind 規則：
//   - 若 cause 已經是 *E，則沿用其 ErrLv 與 Kind（保持原本嚴重度與分類）。
//   - 若 cause 不是本包定義的 *E（多半是標準庫或三方依賴錯誤），則 ErrLv 一律視為 Fatal。
//
// 建議使用方式：
//   - 若你已判斷該錯誤是「可預期且可處理」的情境，請直接建立一個 *E
//     （使用 New / NewKind 並自行指定分級），而不要對其呼叫 Wrap。
func Wrap(cause error, msg string) *E {
	var e *E
	errLv := Fatal
	kind := KindUnknown
	if errors.As(cause, &e) {
		errLv = e.ErrLv
		kind = e.Kind
	}
	r := New(errLv, msg)
	r.Kind = kind
	r.Cause = cause
	return r
}

// WrapKind 與 Wrap 相同，但強制指定 Kind（分級仍依 NewKind 規則）。
func WrapKind(cause error, kind Kind, msg string) *E {
	r := NewKind(kind, msg)
	r.Cause = cause
	return r
}

// IsKind 判斷錯誤鏈上是否存在指定分類的 *E。
func IsKind(err error, kind Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return e, false
}
