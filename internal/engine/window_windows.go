//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaBorderColor          = 34
	dwmwaCaptionColor         = 35
)

func setWindowAttribute(hwnd unsafe.Pointer, attr uintptr, value uint32) {
	procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		attr,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
}

// styleTitleBar switches the title bar to dark mode and paints the caption
// and border in the scene's clear color.
func styleTitleBar(window *glfw.Window, r, g, b float32) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}
	setWindowAttribute(unsafe.Pointer(hwnd), dwmwaUseImmersiveDarkMode, 1)

	// COLORREF is 0x00BBGGRR.
	colorRef := uint32(uint8(r*255)) | uint32(uint8(g*255))<<8 | uint32(uint8(b*255))<<16
	setWindowAttribute(unsafe.Pointer(hwnd), dwmwaBorderColor, colorRef)
	setWindowAttribute(unsafe.Pointer(hwnd), dwmwaCaptionColor, colorRef)
}
