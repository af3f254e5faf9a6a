// Package kernel runs per-element vector work across a pool of goroutine lanes,
// the host-side stand-in for launching a compute kernel over a buffer.
package kernel

import (
	"context"
	"runtime"
	"sync"
)

// DefaultBlockSize is the number of consecutive indices handed to a lane at once.
const DefaultBlockSize = 256

// Device dispatches kernels over a fixed number of lanes.
type Device struct {
	Lanes     int
	BlockSize int
}

// NewDevice returns a Device with the given lane count (<= 0 means NumCPU).
func NewDevice(lanes int) *Device {
	if lanes <= 0 {
		lanes = runtime.NumCPU()
	}
	return &Device{Lanes: lanes, BlockSize: DefaultBlockSize}
}

// Launch calls fn(i) exactly once for every i in [0, n).
// Blocks of indices are fed to the lanes through a channel; if ctx is
// cancelled, no further blocks are started and ctx.Err() is returned.
func (d *Device) Launch(ctx context.Context, n int, fn func(i int)) error {
	if err := ctx.Err(); err != nil || n <= 0 {
		return err
	}

	block := d.BlockSize
	if block <= 0 {
		block = DefaultBlockSize
	}
	blocks := (n + block - 1) / block

	lanes := d.Lanes
	if lanes <= 0 {
		lanes = 1
	}
	if lanes > blocks {
		lanes = blocks
	}

	// Small launches run inline.
	if lanes == 1 {
		for b := 0; b < blocks; b++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			runBlock(b, block, n, fn)
		}
		return nil
	}

	blockChan := make(chan int, lanes*2)
	var wg sync.WaitGroup

	for w := 0; w < lanes; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range blockChan {
				runBlock(b, block, n, fn)
			}
		}()
	}

	var err error
send:
	for b := 0; b < blocks; b++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case blockChan <- b:
		}
	}
	close(blockChan)

	wg.Wait()
	return err
}

func runBlock(b, block, n int, fn func(i int)) {
	end := (b + 1) * block
	if end > n {
		end = n
	}
	for i := b * block; i < end; i++ {
		fn(i)
	}
}
