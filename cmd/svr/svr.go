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

package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/uniform"
	"github.com/zintix-labs/randlab/server"
	"github.com/zintix-labs/randlab/server/logger"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// This command is intentionally a "lab server" entrypoint for the randlab repo.
// For production deployments, use a separate scaffold project and run ModeProd.
func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	server.Run(cfg)
}

// fileConfig 是 YAML 設定檔的結構。
//
// 範例：
//
//	addr: ":5808"
//	log_mode: ModeDev
//	seed: 42
//	policy:
//	  adjust_errors: true
//	  pos_inf: 1000
//	  neg_inf: -1000
type fileConfig struct {
	Addr    string          `yaml:"addr"`
	LogMode string          `yaml:"log_mode"`
	Seed    *int64          `yaml:"seed"`
	Policy  *uniform.Policy `yaml:"policy"`
}

func loadConfig() (*svrcfg.SvrCfg, error) {
	var path string
	flag.StringVar(&path, "config", "", "path to yaml config (optional)")
	flag.Parse()

	fc := new(fileConfig)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrap(err, "read config failed")
		}
		if err := yaml.Unmarshal(raw, fc); err != nil {
			return nil, errs.Wrap(err, "parse config failed")
		}
	}

	log, _ := logger.NewAsync(4096, normMode(fc.LogMode))

	var lab *randlab.Lab
	if fc.Seed != nil {
		lab = randlab.New(*fc.Seed)
	} else {
		var err error
		lab, err = randlab.NewAuto()
		if err != nil {
			return nil, err
		}
	}
	if fc.Policy != nil {
		lab.SetPolicy(*fc.Policy)
	}

	return &svrcfg.SvrCfg{
		Log:  log,
		Addr: fc.Addr,
		Lab:  lab,
	}, nil
}

func normMode(s string) logger.LogMode {
	switch s {
	case "ModeProd":
		return logger.ModeProd
	case "ModeSilence":
		return logger.ModeSilence
	default:
		return logger.ModeDev
	}
}
