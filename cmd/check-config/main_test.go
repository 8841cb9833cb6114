package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/broadside/pkg/config"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	tests := []struct {
		name     string
		path     string
		wantErr  string
		wantText []string
	}{
		{
			name:     "内置调参文件",
			path:     "../../data/arena.yaml",
			wantText: []string{"YAML 格式正确", "difficulty", "small_ship 100%", "small_ship 70%, sea_monster 30%"},
		},
		{
			name:    "文件不存在",
			path:    filepath.Join(dir, "missing.yaml"),
			wantErr: "读取文件失败",
		},
		{
			name:    "未知字段",
			path:    write("typo.yaml", "enemies:\n  spawnDistanse: 500\n"),
			wantErr: "spawnDistanse",
		},
		{
			name:    "数值不合法",
			path:    write("bad.yaml", "enemies:\n  maxWaveSize: 0\n"),
			wantErr: "maxWaveSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := check(&buf, tt.path, 4)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("check() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("check() error = %v", err)
			}
			for _, want := range tt.wantText {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestDescribeBracket(t *testing.T) {
	b := config.WeightBracket{
		MinDifficulty: 4,
		Weights: []config.WeightedType{
			{Type: "small_ship", Weight: 0.5},
			{Type: "sea_monster", Weight: 0.3},
			{Type: "large_ship", Weight: 0.2},
		},
	}
	want := "small_ship 50%, sea_monster 30%, large_ship 20%"
	if got := describeBracket(b); got != want {
		t.Errorf("describeBracket() = %q, want %q", got, want)
	}
}
