package utils

import (
	"runtime"
	"sync"
)

// Multithreads an operation on a range of integers
//
// should be run sequentially, not in a separate thread
// designed for use by cost functions and trainers in their mass calculations
//
// the range includes 'start' and excludes 'end'
//  - MultiThread assumes that end ≥ start
// 'f' is the function that should be run for each value in the range
// 'opsPerThread' is the number of operations that each goroutine will handle before requesting another set
// 'threadsPerCPU' is the number of goroutines created for each CPU
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	MultiThreadN(start, end, f, opsPerThread, runtime.NumCPU()*threadsPerCPU)
}

// MultiThreadN is MultiThread with a fixed number of goroutines instead of a number per CPU.
//
// If numThreads is 1 or less, 'f' is run in order on the calling goroutine. No more goroutines
// are started than there are sets of operations to hand out.
func MultiThreadN(start, end int, f func(int), opsPerThread, numThreads int) {
	if opsPerThread < 1 {
		opsPerThread = 1
	}

	if numThreads <= 1 || end-start <= opsPerThread {
		for i := start; i < end; i++ {
			f(i)
		}
		return
	}

	if sets := (end - start + opsPerThread - 1) / opsPerThread; numThreads > sets {
		numThreads = sets
	}

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup

	wg.Add(numThreads)
	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					break
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread

				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}

// Chunks splits [0, n) into at most 'parts' contiguous ranges of nearly equal size. Each range is
// returned as a pair {start, end}. Chunks returns no ranges if n < 1.
func Chunks(n, parts int) [][2]int {
	if n < 1 {
		return nil
	}

	if parts < 1 {
		parts = 1
	} else if parts > n {
		parts = n
	}

	cs := make([][2]int, parts)
	size, extra := n/parts, n%parts

	start := 0
	for p := range cs {
		end := start + size
		if p < extra {
			end++
		}

		cs[p] = [2]int{start, end}
		start = end
	}

	return cs
}
