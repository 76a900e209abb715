//go:build !mobile

// stub.go - 不带 mobile 标签时的占位文件
// 绑定入口在 mobile.go，只在 -tags mobile 时编译
package mobile

// Dummy 让 ./mobile 在桌面端构建时也是一个合法的包
func Dummy() {}
