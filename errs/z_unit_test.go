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
	"io"
	"strings"
	"testing"
)

// TestNewKindLevels 驗證 Kind 與 ErrLevel 的對應規則
func TestNewKindLevels(t *testing.T) {
	cases := []struct {
		kind Kind
		lv   ErrLevel
	}{
		{KindSourceUnavailable, Fatal},
		{KindInvalidRange, Warn},
		{KindInvalidPolicy, Warn},
	}
	for _, c := range cases {
		e := NewKind(c.kind, "boom")
		if e.ErrLv != c.lv {
			t.Fatalf("kind %v: expected level %v, got %v", c.kind, c.lv, e.ErrLv)
		}
		if !IsKind(e, c.kind) {
			t.Fatalf("IsKind missed kind %v", c.kind)
		}
	}
}

// TestWrapPreservesLevelAndKind 驗證 Wrap 沿用內層 *E 的分級與分類
func TestWrapPreservesLevelAndKind(t *testing.T) {
	inner := NewKind(KindInvalidRange, "bad range")
	wrapped := Wrap(inner, "while decoding request")
	if wrapped.ErrLv != Warn {
		t.Fatalf("expected Warn, got %v", wrapped.ErrLv)
	}
	if !IsKind(wrapped, KindInvalidRange) {
		t.Fatal("wrap dropped the kind")
	}
	if !errors.Is(wrapped, inner) {
		t.Fatal("wrap must keep the cause on the chain")
	}

	// 非 *E 的底層錯誤一律視為 Fatal
	w2 := Wrap(io.ErrUnexpectedEOF, "read failed")
	if w2.ErrLv != Fatal {
		t.Fatalf("expected Fatal for foreign cause, got %v", w2.ErrLv)
	}
	if !errors.Is(w2, io.ErrUnexpectedEOF) {
		t.Fatal("wrap must keep the foreign cause on the chain")
	}
}

// TestWrapKind 驗證強制分類的包裝
func TestWrapKind(t *testing.T) {
	e := WrapKind(io.ErrUnexpectedEOF, KindSourceUnavailable, "os entropy read failed")
	if !IsKind(e, KindSourceUnavailable) {
		t.Fatal("WrapKind lost the kind")
	}
	if e.ErrLv != Fatal {
		t.Fatalf("expected Fatal, got %v", e.ErrLv)
	}
}

// TestErrorMessage 驗證訊息格式包含分級、分類與 cause
func TestErrorMessage(t *testing.T) {
	e := WrapKind(io.ErrUnexpectedEOF, KindInvalidPolicy, "policy missing")
	msg := e.Error()
	for _, want := range []string{"errlv=warn", "kind=invalid_policy", "policy missing", "unexpected EOF"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q: %s", want, msg)
		}
	}
}
