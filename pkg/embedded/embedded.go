// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的调参文件。
//
// 以 "data/" 开头的路径在 Init() 之后从嵌入文件系统读取；
// 其他路径（或尚未初始化时）直接读取磁盘文件，便于命令行 -config 覆盖和测试。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并去掉 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// isEmbedded 路径是否应从嵌入文件系统读取
func isEmbedded(path string) bool {
	return initialized && strings.HasPrefix(path, dataPrefix)
}

// ReadFile 读取文件内容
func ReadFile(path string) ([]byte, error) {
	normalized := normalize(path)
	if isEmbedded(normalized) {
		data, err := fs.ReadFile(dataFS, normalized)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", normalized, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在（嵌入或磁盘）
func Exists(path string) bool {
	normalized := normalize(path)
	if isEmbedded(normalized) {
		_, err := fs.Stat(dataFS, normalized)
		return err == nil
	}
	_, err := os.Stat(path)
	return err == nil
}
