//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按手机处理（不设置窗口尺寸，由屏幕决定视口）
const MobileEmulateEnv = "VALENTINE_MOBILE_EMULATE"

// IsMobile 是否运行在手机上
// 桌面端编译时只看 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
