package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/internal/signal"
	"github.com/betbot/marketsim/pkg/marketmath"
)

var log = logrus.WithField("module", "sim")

// DefaultLength 默认采样点数。
const DefaultLength = 400

// ErrInvalidLength 非法配置：length < 2 时 dt 除零，生成前直接拒绝。
var ErrInvalidLength = fmt.Errorf("simulation length must be >= 2")

// Config 生成配置。时间跨度固定为 Horizon，length 只影响采样密度。
type Config struct {
	Length int `yaml:"length" json:"length"` // 采样点数，>= 2，0 表示取默认 400
}

// Validate 校验配置，非法时返回 ErrInvalidLength。
func (c Config) Validate() error {
	if c.Length < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, c.Length)
	}
	return nil
}

// withDefaults 填充默认值（Length==0 -> DefaultLength）。
func (c Config) withDefaults() Config {
	if c.Length == 0 {
		c.Length = DefaultLength
	}
	return c
}

// Result 一次模拟运行的全部产出。
//
// 所有权：三个序列由本次运行独占生成，返回后对消费方只读；
// 新的一次运行产生全新的值，运行之间没有共享可变状态。
//
// RunID 是运行元数据（日志/展示用），不属于确定性输出：
// 相同随机序列与配置下，Points/News/Decisions/Stats/MomentumScale 逐位一致。
type Result struct {
	RunID         string                  `json:"runId"`
	Config        Config                  `json:"config"`
	Points        []domain.Point          `json:"points"`
	News          []domain.NewsEvent      `json:"newsEvents"`
	Decisions     []domain.DecisionRecord `json:"decisions"`
	Stats         domain.MomentumStats    `json:"stats"`
	MomentumScale float64                 `json:"momentumScale"` // max|momentum|，展示层阈值线的缩放因子
}

// Generate 运行完整生成管线：路径 -> 统计量 -> 新闻 -> 信号与决策。
//
// 同步执行，中途无挂起点，返回前全部完成；配置非法时在生成前失败，
// 不会返回半成品输出。rng 为 nil 时使用时间种子（不可复现）。
func Generate(cfg Config, rng Rand) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewTimeRand()
	}

	points := GeneratePath(cfg.Length, domain.DefaultRegimeSchedule(), rng)
	stats := ComputeMomentumStats(points)
	news := SynthesizeNews(points, stats, rng)
	decisions := signal.Enrich(points, news, stats)

	momenta := make([]float64, len(points))
	for i, p := range points {
		momenta[i] = p.Momentum
	}

	result := &Result{
		RunID:         uuid.NewString(),
		Config:        cfg,
		Points:        points,
		News:          news,
		Decisions:     decisions,
		Stats:         stats,
		MomentumScale: marketmath.MaxAbs(momenta),
	}

	log.Infof("模拟运行完成: run=%s length=%d news=%d decisions=%d momentumScale=%.6f",
		result.RunID, cfg.Length, len(news), len(decisions), result.MomentumScale)
	return result, nil
}

// Summary 运行摘要（CLI 与回放界面共用）。
type Summary struct {
	RunID          string                  `json:"runId"`
	Length         int                     `json:"length"`
	NewsCount      int                     `json:"newsCount"`
	DecisionCounts map[domain.Decision]int `json:"decisionCounts"`
	FinalPosition  float64                 `json:"finalPosition"`
	FinalRisk      int                     `json:"finalRisk"`
	MomentumScale  float64                 `json:"momentumScale"`
}

// Summarize 汇总一次运行。
func (r *Result) Summarize() Summary {
	counts := make(map[domain.Decision]int)
	for _, d := range r.Decisions {
		counts[d.Decision]++
	}

	s := Summary{
		RunID:          r.RunID,
		Length:         len(r.Points),
		NewsCount:      len(r.News),
		DecisionCounts: counts,
		MomentumScale:  r.MomentumScale,
	}
	if n := len(r.Points); n > 0 {
		s.FinalPosition = r.Points[n-1].PositionSize
		s.FinalRisk = r.Points[n-1].RiskUtilization
	}
	return s
}
