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

// Package corefmt 提供位元組載荷（byte payload）的文字編碼工具。
//
// randlab 的 bytes 端點會把一段隨機位元組回給呼叫端；HTTP/JSON 這類文字
// 傳輸需要一個穩定的編碼格式。這裡統一提供 Base64 / Base64URL / Hex 三種，
// 讓 server 與測試共用同一套轉換，避免各處自行選格式。
package corefmt

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/zintix-labs/randlab/errs"
)

// Encoding 是 bytes 端點可指定的文字編碼名稱。
type Encoding string

const (
	Base64    Encoding = "base64"
	Base64URL Encoding = "base64url"
	Hex       Encoding = "hex"
)

// EncodeBytes 依指定編碼轉換位元組；未知編碼回傳 Warn 級錯誤。
func EncodeBytes(b []byte, enc Encoding) (string, error) {
	switch enc {
	case Base64, "":
		return EncodeBase64(b), nil
	case Base64URL:
		return EncodeBase64URL(b), nil
	case Hex:
		return EncodeHex(b), nil
	default:
		return "", errs.Warnf("unknown encoding: %s", enc)
	}
}

func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "decode base64 failed")
	}
	return b, err
}

func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "decode base64url failed")
	}
	return b, err
}

func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "decode hex failed")
	}
	return b, err
}
