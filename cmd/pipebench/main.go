// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command pipebench measures pipe throughput against a buffered channel.
//
// Usage:
//
//	go run ./cmd/pipebench -n 10000000 -block 128 -writers 4 -readers 2
package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/pipe"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of items")
	block := flag.Int("block", pipe.DefaultBlockSize, "slots per block")
	writers := flag.Int("writers", 1, "concurrent writers")
	readers := flag.Int("readers", 1, "concurrent readers")
	flag.Parse()

	if *iterations < 1 || *block < 1 || *writers < 1 || *readers < 1 {
		flag.Usage()
		return
	}

	fmt.Printf("Benchmarking pipes (%d items, block=%d)\n", *iterations, *block)
	fmt.Println("─────────────────────────────────────────────────")

	// Push + pop per iteration on one goroutine.
	fmt.Printf("\nResults (push + pop per iteration):\n")
	chPerOp := report("Channel", sequentialChannel(*iterations, *block), *iterations)
	variants := []struct {
		name string
		b    *pipe.Builder
	}{
		{"Pipe11", pipe.New(*block).SingleWriter().SingleReader()},
		{"Pipe1N", pipe.New(*block).SingleWriter()},
		{"PipeN1", pipe.New(*block).SingleReader()},
		{"PipeNN", pipe.New(*block)},
	}
	for _, v := range variants {
		perOp := report(v.name, sequential(pipe.Build[int](v.b), *iterations), *iterations)
		speedup(v.name, perOp, chPerOp)
	}

	// Hand-off between goroutines through the variant the shape selects.
	b := pipe.New(*block)
	if *writers == 1 {
		b.SingleWriter()
	}
	if *readers == 1 {
		b.SingleReader()
	}
	p := pipe.Build[int](b)
	fmt.Printf("\nResults (%d writers → %d readers, %T):\n", *writers, *readers, p)
	chPerOp = report("Channel", concurrentChannel(*iterations, *block, *writers, *readers), *iterations)
	perOp := report("Pipe", concurrent(p, *iterations, *writers, *readers), *iterations)
	speedup("Pipe", perOp, chPerOp)

	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Channel:     %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  Pipe:        %.2f M ops/sec\n", 1000/perOp)
}

func report(name string, d time.Duration, n int) float64 {
	perOp := float64(d.Nanoseconds()) / float64(n)
	fmt.Printf("  %-12s %v (%.2f ns/op)\n", name+":", d, perOp)
	return perOp
}

func speedup(name string, perOp, chPerOp float64) {
	if perOp < chPerOp {
		fmt.Printf("  %-12s %.2fx (%s faster)\n", "", chPerOp/perOp, name)
	} else {
		fmt.Printf("  %-12s %.2fx (Channel faster)\n", "", perOp/chPerOp)
	}
}

func sequential(p pipe.Pipe[int], n int) time.Duration {
	start := time.Now()
	for i := range n {
		p.Push(i)
		p.Pop()
	}
	return time.Since(start)
}

func sequentialChannel(n, size int) time.Duration {
	ch := make(chan int, size)
	start := time.Now()
	for i := range n {
		ch <- i
		<-ch
	}
	return time.Since(start)
}

// concurrent splits n items over the writers. Each reader stops at its
// own -1 sentinel, pushed once every writer is done.
func concurrent(p pipe.Pipe[int], n, writers, readers int) time.Duration {
	var wr, rd sync.WaitGroup
	start := time.Now()
	for range readers {
		rd.Add(1)
		go func() {
			defer rd.Done()
			for p.Pop() >= 0 {
			}
		}()
	}
	for w := range writers {
		wr.Add(1)
		go func() {
			defer wr.Done()
			for i := w; i < n; i += writers {
				p.Push(i)
			}
		}()
	}
	wr.Wait()
	for range readers {
		p.Push(-1)
	}
	rd.Wait()
	return time.Since(start)
}

func concurrentChannel(n, size, writers, readers int) time.Duration {
	ch := make(chan int, size)
	var wr, rd sync.WaitGroup
	start := time.Now()
	for range readers {
		rd.Add(1)
		go func() {
			defer rd.Done()
			for range ch {
			}
		}()
	}
	for w := range writers {
		wr.Add(1)
		go func() {
			defer wr.Done()
			for i := w; i < n; i += writers {
				ch <- i
			}
		}()
	}
	wr.Wait()
	close(ch)
	rd.Wait()
	return time.Since(start)
}
