// arena-tui 在终端中游玩竞技场
//
// 方向键 / WASD 移动，空格停船，p 或 Esc 暂停，1-3 选择升级，
// o 切换自动驾驶，r 在沉船后重开，q 或 Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/embedded"
	"github.com/decker502/broadside/pkg/utils"
)

const frameInterval = 16 * time.Millisecond

// 单帧最长推进时间，终端卡顿时不整段补算
const maxFrameMs = 100.0

func main() {
	configPath := flag.String("config", "", "竞技场调参文件（默认 data/arena.yaml，不存在时使用内置默认值）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示按时间生成）")
	mute := flag.Bool("mute", false, "关闭音效")
	logPath := flag.String("log", "", "日志文件（默认不输出日志）")
	auto := flag.Bool("auto", false, "以自动驾驶模式启动")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[arena-tui] Random seed: %d", *seed)

	var sound Sounder = muteSounder{}
	if !*mute {
		ts := newToneSounder()
		defer ts.Close()
		sound = ts
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	s := newSession(cfg, rand.New(rand.NewSource(*seed)), sound)
	s.auto = *auto
	run(screen, s)
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func loadConfig(path string) (*config.ArenaConfig, error) {
	if path != "" {
		return config.LoadArenaConfig(path)
	}
	if embedded.Exists(config.DefaultArenaConfigPath) {
		return config.LoadArenaConfig(config.DefaultArenaConfigPath)
	}
	return config.DefaultArenaConfig(), nil
}

// run 主循环：输入事件由独立 goroutine 读取后经通道送回
func run(screen tcell.Screen, s *session) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(s, ev, time.Now()) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := float64(now.Sub(last).Microseconds()) / 1000
			last = now
			if s.summary == nil {
				s.step(min(dt, maxFrameMs), now)
			}
			render(screen, s)
			screen.Show()
		}
	}
}

// handleEvent 处理一个输入事件，返回 false 表示退出
func handleEvent(s *session, ev tcell.Event, now time.Time) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		s.requestPause()
	case tcell.KeyUp:
		s.hold(utils.Vec2{Y: -1}, now)
	case tcell.KeyDown:
		s.hold(utils.Vec2{Y: 1}, now)
	case tcell.KeyLeft:
		s.hold(utils.Vec2{X: -1}, now)
	case tcell.KeyRight:
		s.hold(utils.Vec2{X: 1}, now)
	case tcell.KeyRune:
		return handleRune(s, key.Rune(), now)
	}
	return true
}

func handleRune(s *session, r rune, now time.Time) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'w', 'W':
		s.hold(utils.Vec2{Y: -1}, now)
	case 's', 'S':
		s.hold(utils.Vec2{Y: 1}, now)
	case 'a', 'A':
		s.hold(utils.Vec2{X: -1}, now)
	case 'd', 'D':
		s.hold(utils.Vec2{X: 1}, now)
	case 'o', 'O':
		s.toggleAutopilot()
	case ' ':
		s.stop()
	case 'p', 'P':
		s.requestPause()
	case '1', '2', '3':
		s.pick(int(r - '1'))
	case 'r', 'R':
		if s.summary != nil {
			s.restart()
		}
	}
	return true
}
