package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// toneSounder 用正弦波合成事件音效，不依赖音频资源文件
type toneSounder struct {
	ready bool
}

// newToneSounder 初始化扬声器；失败时返回静音实现
func newToneSounder() *toneSounder {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[arena-tui] Audio disabled: %v", err)
		return &toneSounder{}
	}
	return &toneSounder{ready: true}
}

// tone 生成一段指定频率与时长的正弦波
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

func (t *toneSounder) play(streamers ...beep.Streamer) {
	if !t.ready {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

// Kill 击沉敌人
func (t *toneSounder) Kill() {
	t.play(tone(660, 30*time.Millisecond))
}

// LevelUp 升级上行三连音
func (t *toneSounder) LevelUp() {
	t.play(
		tone(523, 80*time.Millisecond),
		tone(659, 80*time.Millisecond),
		tone(784, 120*time.Millisecond),
	)
}

// GameOver 沉船下行音
func (t *toneSounder) GameOver() {
	t.play(
		tone(330, 200*time.Millisecond),
		tone(247, 200*time.Millisecond),
		tone(165, 400*time.Millisecond),
	)
}

// Close 关闭扬声器
func (t *toneSounder) Close() {
	if t.ready {
		speaker.Close()
	}
}

// muteSounder 静音
type muteSounder struct{}

func (muteSounder) Kill()     {}
func (muteSounder) LevelUp()  {}
func (muteSounder) GameOver() {}
