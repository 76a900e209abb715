package config

import (
	"os"

	"github.com/decker502/valentine/pkg/embedded"
)

// readConfigFile 读取配置文件
// 嵌入资源中存在时优先使用，否则按普通文件路径读取
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
