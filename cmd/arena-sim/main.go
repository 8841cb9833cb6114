// arena-sim 无头运行整局竞技场
//
// 自动驾驶操控玩家，升级时随机选择，结束后打印本局统计与实体池状态。
// 用于调参与回归：同一个 -seed 与 -dt 总是得到相同结果。
//
// 用法:
//
//	go run ./cmd/arena-sim -seed 42 -duration 600
//	go run ./cmd/arena-sim -config data/arena.yaml -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/embedded"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/pilot"
	"github.com/decker502/broadside/pkg/upgrades"
	"github.com/decker502/broadside/pkg/utils"
)

var (
	configPath = flag.String("config", "", "竞技场调参文件（默认 data/arena.yaml，不存在时使用内置默认值）")
	seed       = flag.Int64("seed", 1, "随机种子")
	duration   = flag.Float64("duration", 300, "最长模拟时长（秒，按帧时间计）")
	frameMs    = flag.Float64("dt", 1000.0/60.0, "每帧间隔（毫秒）")
	danger     = flag.Float64("danger", pilot.DefaultDangerRadius, "自动驾驶危险半径")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// runStats 本局统计
type runStats struct {
	frames    int
	upgrades  map[string]int
	levelUps  int
	gameOver  *game.GameOverEvent
	finalSnap game.Snapshot
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *frameMs <= 0 {
		fmt.Fprintln(os.Stderr, "-dt 必须大于 0")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	arena := game.NewArena(cfg, rng)
	stats := run(arena, pilot.New(*danger), rng, *duration*1000, *frameMs)

	printReport(os.Stdout, arena, stats, source)
}

// loadConfig 按 -config、磁盘默认文件、内置默认值的顺序加载配置
func loadConfig(path string) (*config.ArenaConfig, string, error) {
	if path != "" {
		cfg, err := config.LoadArenaConfig(path)
		return cfg, path, err
	}
	if embedded.Exists(config.DefaultArenaConfigPath) {
		cfg, err := config.LoadArenaConfig(config.DefaultArenaConfigPath)
		return cfg, config.DefaultArenaConfigPath, err
	}
	return config.DefaultArenaConfig(), "built-in defaults", nil
}

// run 驱动竞技场直到游戏结束或达到时长上限
func run(arena *game.Arena, ap *pilot.Autopilot, rng *rand.Rand, limitMs, frameMs float64) runStats {
	stats := runStats{upgrades: make(map[string]int)}

	for arena.FrameTime() < limitMs {
		result := arena.Tick(frameMs, ap.Input(arena))
		stats.frames++
		stats.finalSnap = result.Snapshot

		if result.LevelUp != nil {
			stats.levelUps++
			choice := upgrades.RandomChoices(rng, upgrades.DefaultChoiceCount)[0]
			arena.ApplyUpgrade(choice.Func())
			stats.upgrades[choice.Name]++
			log.Printf("[arena-sim] Level %d: %s", result.LevelUp.Level, choice.Name)
		}
		if result.GameOver != nil {
			stats.gameOver = result.GameOver
			break
		}
	}

	stats.finalSnap = arena.Snapshot()
	return stats
}

func printReport(out io.Writer, arena *game.Arena, stats runStats, source string) {
	snap := stats.finalSnap
	fmt.Fprintf(out, "config:      %s\n", source)
	fmt.Fprintf(out, "frames:      %d\n", stats.frames)
	if stats.gameOver != nil {
		fmt.Fprintf(out, "result:      sunk after %s\n", utils.FormatGameTime(stats.gameOver.ElapsedGameTime))
	} else {
		fmt.Fprintf(out, "result:      survived %s (time limit)\n", utils.FormatGameTime(snap.ElapsedGameTime))
	}
	fmt.Fprintf(out, "level:       %d (%d/%d xp)\n", snap.Level, snap.XP, snap.XPToNextLevel)
	fmt.Fprintf(out, "kills:       %d\n", snap.Kills)
	fmt.Fprintf(out, "difficulty:  %d\n", snap.Difficulty)
	fmt.Fprintf(out, "waves:       %d\n", arena.WavesSpawned())
	fmt.Fprintf(out, "shots:       %d\n", arena.ShotsFired())
	fmt.Fprintf(out, "recycled:    %d pickups\n", arena.RecycledPickups())
	fmt.Fprintln(out)

	if len(stats.upgrades) > 0 {
		fmt.Fprintln(out, "upgrades:")
		for _, u := range upgrades.All() {
			if n := stats.upgrades[u.Name]; n > 0 {
				fmt.Fprintf(out, "  %-16s x%d\n", u.Name, n)
			}
		}
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "pool\tactive\tlen\tcap")
	for _, p := range arena.PoolStats() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", p.Name, p.Active, p.Len, p.Cap)
	}
	w.Flush()
}
