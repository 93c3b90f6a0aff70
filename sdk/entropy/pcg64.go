// Package entropy: the fast backend wraps the PCG64 generator.
//
// The PCG algorithm is designed by Melissa O'Neill. The seed-expansion
// (splitmix64) constants follow the reference implementation by
// Sebastiano Vigna.

package entropy

import (
	"crypto/rand"
	"math"
	"math/big"
	r2 "math/rand/v2"
)

// Fast 是預設後端：math/rand/v2 的 PCG 核心（128-bit 狀態、64-bit 輸出）。
// 非加密等級；適合模擬與一般抽樣負載。
type Fast struct {
	rng *r2.PCG
}

// NewFast 以指定 seed 建立 Fast 來源。
// 相同 seed 在同一版本下保證產生相同輸出序列（可重現合約）。
func NewFast(seed int64) *Fast {
	f := &Fast{}
	f.Reseed(seed)
	return f
}

// NewFastAuto 使用加密隨機來源產生 seed，建立 Fast 來源。
func NewFastAuto() *Fast {
	seed, _ := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	return NewFast(seed.Int64())
}

// Reseed 以 splitmix64 將 seed 展開成 128-bit 初始狀態。
func (f *Fast) Reseed(seed int64) {
	x := uint64(seed) ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xDA942042E4DD58B5)
	f.rng = r2.NewPCG(hi, lo)
}

// Uint64 回傳非負整數uint64亂數
func (f *Fast) Uint64() uint64 {
	return f.rng.Uint64()
}

// Word 回傳指定寬度的無號亂數字組（64-bit 原生輸出，窄寬度取低位）。
func (f *Fast) Word(widthBits uint) (uint64, error) {
	mask, err := maskWidth(widthBits)
	if err != nil {
		return 0, err
	}
	return f.rng.Uint64() & mask, nil
}

// Fill 以隨機位元組填滿 p；此後端不會失敗。
func (f *Fast) Fill(p []byte) error {
	fillFromWords(p, f.rng.Uint64)
	return nil
}

// Snapshot 取得當下內部狀態
func (f *Fast) Snapshot() ([]byte, error) {
	return f.rng.MarshalBinary()
}

// Restore 恢復內部狀態
func (f *Fast) Restore(data []byte) error {
	return f.rng.UnmarshalBinary(data)
}
