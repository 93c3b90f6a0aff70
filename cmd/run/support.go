package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/sdk/entropy"
	"github.com/zintix-labs/randlab/stats"
)

var cfg *config = new(config)

type config struct {
	source    string
	min       int64
	max       int64
	minExcl   bool
	maxExcl   bool
	draws     int
	seed      int64
	alpha     float64
	pprofmode string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&cfg.source, "source", "fast", "entropy source: fast|audit|secure")
	flag.Int64Var(&cfg.min, "min", -5, "range low bound")
	flag.Int64Var(&cfg.max, "max", 5, "range high bound")
	flag.BoolVar(&cfg.minExcl, "minexcl", false, "exclude low bound")
	flag.BoolVar(&cfg.maxExcl, "maxexcl", false, "exclude high bound")
	flag.IntVar(&cfg.draws, "draws", 100000, "number of draws")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for the deterministic sources")
	flag.Float64Var(&cfg.alpha, "alpha", 0.01, "chi-square significance level")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()

	// given seed illeagel -> default seed
	if cfg.seed < 1 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			log.Fatal(err)
		}
		cfg.seed = seed.Int64()
	}
}

// executeChecker 跑一輪均勻性檢查：大量抽樣 → 計數 → 卡方檢定 → 表格輸出。
func executeChecker() {
	kind, err := entropy.ParseKind(cfg.source)
	if err != nil {
		log.Fatal(err)
	}
	lab := randlab.New(cfg.seed)

	// 計數桶覆蓋正規化後可能出現的所有值
	lo, hi := cfg.min, cfg.max
	if cfg.minExcl {
		lo++
	}
	if cfg.maxExcl {
		hi--
	}
	freq, err := stats.NewFreq(lo, hi)
	if err != nil {
		log.Fatal(err)
	}

	bar := pb.StartNew(cfg.draws)
	for i := 0; i < cfg.draws; i++ {
		v, err := randlab.Int(lab, kind, cfg.min, cfg.max, !cfg.minExcl, !cfg.maxExcl)
		if err != nil {
			log.Fatal(err)
		}
		if err := freq.Add(v); err != nil {
			log.Fatal(err)
		}
		bar.Increment()
	}
	bar.Finish()

	gof, err := stats.ChiSquareUniform(freq)
	if err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	title := p.Sprintf("uniformity [%d, %d] source=%s seed=%d", cfg.min, cfg.max, cfg.source, cfg.seed)
	fmt.Print(stats.RenderGOF(title, gof, cfg.alpha))
}
