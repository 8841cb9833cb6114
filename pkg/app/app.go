// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 调参文件路径，为空时使用嵌入的 data/arena.yaml
	ConfigPath string
	// Seed 随机种子，0 表示按当前时间生成
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	arenaConfig              *config.ArenaConfig
	verbose                  bool
	lastUpdate               time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultArenaConfigPath
	}
	arenaConfig, err := config.LoadArenaConfig(path)
	if err != nil {
		return nil, fmt.Errorf("竞技场配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载竞技场配置: %s (%d 种敌人)", path, len(arenaConfig.HostileTypes))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() scenes.Scene {
		return scenes.NewArenaScene(sceneManager, arenaConfig, rng)
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("无法创建竞技场场景")
	}

	return &App{
		sceneManager: sceneManager,
		arenaConfig:  arenaConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.frameDelta())
	return nil
}

// frameDelta 返回本帧间隔（毫秒）
// 首帧使用固定 tick 间隔，之后使用实际墙钟间隔
func (a *App) frameDelta() float64 {
	now := time.Now()
	tick := 1000.0 / float64(ebiten.TPS())
	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
		return tick
	}
	delta := float64(now.Sub(a.lastUpdate).Microseconds()) / 1000
	a.lastUpdate = now
	// 窗口拖动等造成的长时间停顿不整段补算
	if delta > tick*4 {
		delta = tick * 4
	}
	return delta
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（等于竞技场尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 竞技场对应的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return int(a.arenaConfig.Arena.Width), int(a.arenaConfig.Arena.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
