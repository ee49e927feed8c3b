//go:build windows

package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows"
)

func GetSystemInfo() (*SystemInfo, error) {
	node, _ := os.Hostname()
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return &SystemInfo{
		Name:      "WindowsNT",
		Node:      node,
		Release:   fmt.Sprint(major),
		Version:   fmt.Sprintf("%d.%d.%d", major, minor, build),
		Machine:   runtime.GOARCH,
		OS:        runtime.GOOS,
		Processor: cpuid.CPU.BrandName,
		Cores:     cpuid.CPU.LogicalCores,
	}, nil
}
