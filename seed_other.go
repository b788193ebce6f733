//go:build !windows

package tinyrng

import "time"

func clockSeed() uint64 {
	return uint64(time.Now().UnixMicro())
}
