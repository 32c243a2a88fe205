package ui

import "sync/atomic"

type Stats struct {
	TotalFiles   atomic.Int64
	TotalBytes   atomic.Int64
	TotalBatches atomic.Int64
	TotalLinks   atomic.Int64
}
