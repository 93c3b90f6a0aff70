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

package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// RenderGOF 把檢定結果輸出成對齊的 ASCII 表格（終端報告用）。
func RenderGOF(title string, g GOF, alpha float64) string {
	p := message.NewPrinter(lang)
	verdict := "REJECT (not uniform)"
	if g.Uniform(alpha) {
		verdict = "PASS (uniform)"
	}
	msg := map[string]string{
		"Samples":    p.Sprintf("%d", g.N),
		"Buckets":    p.Sprintf("%d", g.Buckets),
		"Chi-Square": p.Sprintf("%.4f", g.ChiSquare),
		"DF":         p.Sprintf("%.0f", g.DF),
		"P-Value":    p.Sprintf("%.6f", g.PValue),
		"Alpha":      p.Sprintf("%.3f", alpha),
		"Verdict":    verdict,
	}
	keys := []string{"Samples", "Buckets", "Chi-Square", "DF", "P-Value", "Alpha", "Verdict"}
	return fmtTable(title, keys, msg)
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider

	return fmtStr
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
