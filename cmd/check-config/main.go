// check-config 检查竞技场调参文件
//
// 严格解析（未知字段报错）并校验数值，通过后打印难度曲线，便于调参时核对。
//
// 用法:
//
//	go run ./cmd/check-config                  # 检查 data/arena.yaml
//	go run ./cmd/check-config -levels 12 my.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/systems"
	"github.com/decker502/broadside/pkg/utils"
)

func main() {
	levels := flag.Int("levels", 8, "打印的难度级数")
	flag.Parse()

	path := config.DefaultArenaConfigPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if err := check(os.Stdout, path, *levels); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

// check 读取并校验配置，成功时输出摘要与难度曲线
func check(out io.Writer, path string, levels int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	cfg, err := config.ParseArenaConfigStrict(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(out, "✅ YAML 格式正确: %s\n", path)
	fmt.Fprintf(out, "✅ 竞技场 %.0fx%.0f，敌人类型 %d 种，权重分段 %d 个\n",
		cfg.Arena.Width, cfg.Arena.Height, len(cfg.HostileTypes), len(cfg.TypeWeights))
	fmt.Fprintln(out)

	printDifficultyTable(out, cfg, levels)
	fmt.Fprintln(out)
	printLevelTable(out, cfg, levels)
	return nil
}

// printDifficultyTable 每个难度的开始时间、生成间隔、波次大小与类型权重
func printDifficultyTable(out io.Writer, cfg *config.ArenaConfig, levels int) {
	engine := systems.NewDifficultyEngine(cfg)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "difficulty\tstarts\tinterval\twave\ttypes")
	for d := 1; d <= levels; d++ {
		starts := float64(d-1) * cfg.Enemies.DifficultyInterval
		fmt.Fprintf(w, "%d\t%s\t%.0fms\t%d\t%s\n",
			d, utils.FormatGameTime(starts), engine.SpawnInterval(d), engine.WaveSize(d),
			describeBracket(cfg.BracketFor(d)))
	}
	w.Flush()
}

// printLevelTable 每级所需经验
func printLevelTable(out io.Writer, cfg *config.ArenaConfig, levels int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "level\txp needed\ttotal")
	total := 0
	for level := 1; level <= levels; level++ {
		need := entities.XPToLevel(cfg.Progression, level)
		total += need
		fmt.Fprintf(w, "%d\t%d\t%d\n", level, need, total)
	}
	w.Flush()
}

// describeBracket 以百分比描述权重分段（保持累积阈值顺序）
func describeBracket(b config.WeightBracket) string {
	total := 0.0
	for _, w := range b.Weights {
		total += w.Weight
	}
	parts := make([]string, 0, len(b.Weights))
	for _, w := range b.Weights {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", w.Type, w.Weight/total*100))
	}
	return strings.Join(parts, ", ")
}
