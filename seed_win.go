//go:build windows

package tinyrng

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")
)

// performanceCounter returns the QueryPerformanceCounter tick, or 0 if the call fails.
func performanceCounter() uint64 {
	var qpc int64
	r1, _, _ := procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	if r1 == 0 {
		return 0
	}
	return uint64(qpc)
}

// The system clock on Windows advances in 100ns steps or coarser; the
// performance counter separates seeds taken within one step.
func clockSeed() uint64 {
	return uint64(time.Now().UnixMicro()) ^ performanceCounter()<<32
}
