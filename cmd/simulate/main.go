package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/internal/sim"
	"github.com/betbot/marketsim/pkg/config"
	"github.com/betbot/marketsim/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（支持 .yaml, .yml, .json）")
	length := flag.Int("length", 0, "采样点数（覆盖配置，>= 2）")
	seed := flag.Int64("seed", 0, "随机种子（覆盖配置，0 表示时间种子）")
	runs := flag.Int("runs", 1, "并发批量运行次数，第 i 次使用种子 seed+i")
	jsonOut := flag.Bool("json", false, "把完整结果以 JSON 输出到 stdout")
	flag.Parse()

	// .env 可选，不存在时静默忽略
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if *length != 0 {
		cfg.Sim.Length = *length
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	log := logger.WithField("module", "simulate")

	if *runs > 1 {
		baseSeed := cfg.Sim.Seed
		if baseSeed == 0 {
			baseSeed = time.Now().UnixNano()
			log.Infof("批量模式未指定种子，使用时间基准种子: %d", baseSeed)
		}

		summaries, err := sim.RunEnsemble(sim.Config{Length: cfg.Sim.Length}, *runs, baseSeed)
		if err != nil {
			log.Errorf("批量生成失败: %v", err)
			os.Exit(1)
		}

		var posSum float64
		var newsSum int
		for i, s := range summaries {
			posSum += s.FinalPosition
			newsSum += s.NewsCount
			log.Infof("运行 %d: run=%s news=%d enter=%d exit=%d finalPos=%.4f risk=%d%%",
				i, s.RunID, s.NewsCount,
				s.DecisionCounts[domain.DecisionEnter],
				s.DecisionCounts[domain.DecisionExit],
				s.FinalPosition, s.FinalRisk)
		}
		n := float64(len(summaries))
		log.Infof("批量汇总: runs=%d 平均新闻数=%.1f 平均终仓=%.4f",
			len(summaries), float64(newsSum)/n, posSum/n)

		if *jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(summaries); err != nil {
				log.Errorf("JSON 输出失败: %v", err)
				os.Exit(1)
			}
		}
		return
	}

	var rng sim.Rand
	if cfg.Sim.Seed != 0 {
		rng = sim.NewRand(cfg.Sim.Seed)
		log.Infof("使用固定种子: %d（结果可复现）", cfg.Sim.Seed)
	}

	result, err := sim.Generate(sim.Config{Length: cfg.Sim.Length}, rng)
	if err != nil {
		log.Errorf("生成失败: %v", err)
		os.Exit(1)
	}

	s := result.Summarize()
	log.Infof("运行摘要: run=%s points=%d news=%d enter=%d scale=%d hold=%d exit=%d finalPos=%.4f risk=%d%% momentumScale=%.6f",
		s.RunID, s.Length, s.NewsCount,
		s.DecisionCounts[domain.DecisionEnter],
		s.DecisionCounts[domain.DecisionScale],
		s.DecisionCounts[domain.DecisionHold],
		s.DecisionCounts[domain.DecisionExit],
		s.FinalPosition, s.FinalRisk, s.MomentumScale)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Errorf("JSON 输出失败: %v", err)
			os.Exit(1)
		}
	}
}
