package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/internal/sim"
	"github.com/betbot/marketsim/pkg/config"
)

const (
	// feedWindow 新闻/决策滚动窗口（模拟时间单位，相对播放进度）
	feedWindow = 12.0

	// tickInterval 播放步进间隔
	tickInterval = 50 * time.Millisecond

	maxFeedRows = 6
)

var (
	// 样式定义
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	holdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// tickMsg 播放步进消息
type tickMsg time.Time

// playbackModel 回放播放器的 Bubbletea 模型。
// 对一次已完成的模拟结果只读回放：cursor 沿 Points 前进，界面按 cursor 处的
// 播放时间做滚动窗口渲染，不修改结果本身。
type playbackModel struct {
	result  *sim.Result
	cursor  int
	playing bool

	width  int
	height int
}

func newPlaybackModel(result *sim.Result) playbackModel {
	return playbackModel{
		result:  result,
		playing: true,
	}
}

// Init 启动播放定时器
func (m playbackModel) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update 处理消息并更新模型
func (m playbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.playing && m.cursor < len(m.result.Points)-1 {
			m.cursor++
		}
		if m.cursor >= len(m.result.Points)-1 {
			m.playing = false
		}
		return m, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			// 播放到末尾后按空格从头开始
			if !m.playing && m.cursor >= len(m.result.Points)-1 {
				m.cursor = 0
			}
			m.playing = !m.playing
			return m, nil
		case "left":
			m.playing = false
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "right":
			m.playing = false
			if m.cursor < len(m.result.Points)-1 {
				m.cursor++
			}
			return m, nil
		case "r":
			m.cursor = 0
			m.playing = true
			return m, nil
		}
	}

	return m, nil
}

// View 渲染UI
func (m playbackModel) View() string {
	if m.width == 0 {
		return "初始化中..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, sectionStyle.Render(m.renderChart()))
	sections = append(sections, sectionStyle.Render(m.renderNewsFeed()))
	sections = append(sections, sectionStyle.Render(m.renderDecisionLog()))

	help := dimStyle.Render("空格 播放/暂停 | ←/→ 单步 | r 重播 | q 退出")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader 渲染当前点状态行
func (m playbackModel) renderHeader() string {
	p := m.result.Points[m.cursor]

	status := "▶ 播放中"
	if !m.playing {
		status = "⏸ 已暂停"
	}

	line := fmt.Sprintf("run=%s  t=%6.2f  prob=%.4f  signal=%.3f  pos=%+.4f  risk=%3d%%  %s",
		m.result.RunID[:8], p.T, p.Prob, p.SignalScore, p.PositionSize, p.RiskUtilization, status)
	return headerStyle.Render(line)
}

// renderChart 渲染概率走势与动量的迷你图
func (m playbackModel) renderChart() string {
	chartWidth := m.width - 6
	if chartWidth < 10 {
		chartWidth = 10
	}

	visible := m.result.Points[:m.cursor+1]
	if len(visible) > chartWidth {
		visible = visible[len(visible)-chartWidth:]
	}

	var probLine strings.Builder
	var momentumLine strings.Builder
	for _, p := range visible {
		probLine.WriteRune(sparkRune((p.Prob - sim.ProbFloor) / (sim.ProbCeil - sim.ProbFloor)))
		// 动量按全序列最大绝对值归一（展示层缩放，与决策阈值无关）
		norm := 0.5
		if m.result.MomentumScale > 0 {
			norm = (p.Momentum/m.result.MomentumScale + 1) / 2
		}
		momentumLine.WriteRune(sparkRune(norm))
	}

	p := m.result.Points[m.cursor]
	thresholdLine := m.result.MomentumScale * p.TradeThreshold

	out := fmt.Sprintf("概率  %s\n动量  %s\n%s",
		probLine.String(),
		dimStyle.Render(momentumLine.String()),
		dimStyle.Render(fmt.Sprintf("动量阈值线 ±%.6f（阈值 %.2f × 幅度 %.6f）",
			thresholdLine, p.TradeThreshold, m.result.MomentumScale)))
	return out
}

// renderNewsFeed 渲染滚动窗口内的新闻
func (m playbackModel) renderNewsFeed() string {
	now := m.result.Points[m.cursor].T

	var rows []string
	for _, n := range m.result.News {
		if n.T > now || now-n.T > feedWindow {
			continue
		}
		style := positiveStyle
		mark := "▲"
		if n.Polarity == domain.PolarityNegative {
			style = negativeStyle
			mark = "▼"
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s t=%6.2f rel=%.2f %s", mark, n.T, n.Relevance, n.Headline)))
	}
	if len(rows) > maxFeedRows {
		rows = rows[len(rows)-maxFeedRows:]
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("（窗口内无新闻）"))
	}

	return "新闻\n" + strings.Join(rows, "\n")
}

// renderDecisionLog 渲染滚动窗口内的决策日志
func (m playbackModel) renderDecisionLog() string {
	now := m.result.Points[m.cursor].T

	var rows []string
	for _, d := range m.result.Decisions {
		if d.T > now || now-d.T > feedWindow {
			continue
		}
		style := holdStyle
		switch d.Decision {
		case domain.DecisionEnter, domain.DecisionScale:
			style = positiveStyle
		case domain.DecisionExit:
			style = negativeStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-7s t=%6.2f score=%.3f pos=%+.4f prob=%.4f",
			d.Decision, d.T, d.SignalScore, d.PositionSize, d.Prob)))
	}
	if len(rows) > maxFeedRows {
		rows = rows[len(rows)-maxFeedRows:]
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("（窗口内无决策）"))
	}

	return "决策\n" + strings.Join(rows, "\n")
}

// sparkRune 把 [0,1] 映射到八档方块字符
func sparkRune(level float64) rune {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	idx := int(level * float64(len(sparkRunes)))
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return sparkRunes[idx]
}

func main() {
	configPath := flag.String("config", "", "配置文件路径（支持 .yaml, .yml, .json）")
	length := flag.Int("length", 0, "采样点数（覆盖配置，>= 2）")
	seed := flag.Int64("seed", 0, "随机种子（覆盖配置，0 表示时间种子）")
	flag.Parse()

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

	// 回放界面接管终端，库日志不能写 stdout；有配置日志文件则写文件，否则丢弃
	if cfg.Log.File != "" {
		if f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
			logrus.SetOutput(f)
		} else {
			logrus.SetOutput(io.Discard)
		}
	} else {
		logrus.SetOutput(io.Discard)
	}

	var rng sim.Rand
	if cfg.Sim.Seed != 0 {
		rng = sim.NewRand(cfg.Sim.Seed)
	}

	result, err := sim.Generate(sim.Config{Length: cfg.Sim.Length}, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "生成失败: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newPlaybackModel(result), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "回放界面异常退出: %v\n", err)
		os.Exit(1)
	}
}
