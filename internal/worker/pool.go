// Package worker provides a worker pool for parallel perft computation.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/castlebay/chesskit/internal/engine"
)

// WorkItem is one root move to expand: the position after the move and the
// remaining search depth.
type WorkItem struct {
	Index int // Original index for tracking
	Move  engine.RootMove
	Pos   engine.Position
	Depth int
}

// WorkResult is the node count for one expanded root move.
type WorkResult struct {
	Index int
	Move  engine.RootMove
	Nodes uint64
}

// Pool manages a pool of workers counting perft subtrees.
type Pool struct {
	numWorkers int
	workChan   chan WorkItem
	resultChan chan WorkResult
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// NewPool creates a pool with the given number of workers and buffer size.
func NewPool(numWorkers, bufferSize int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		workChan:   make(chan WorkItem, bufferSize),
		resultChan: make(chan WorkResult, bufferSize),
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker expands items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- WorkResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: engine.Perft(item.Pos, item.Depth),
		}
	}
}

// Submit submits a work item. This may block if the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items. Items already queued
// are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After Close the result channel is closed as well.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan WorkResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ParallelPerft counts leaf positions to the given depth, splitting the
// root moves across workers. workers <= 0 uses GOMAXPROCS. The per-move
// counts are returned alongside the total, ordered like the root moves.
func ParallelPerft(pos engine.Position, depth, workers int) (uint64, []WorkResult) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	moves := engine.AllLegalMoves(&pos)
	if depth <= 1 {
		results := make([]WorkResult, len(moves))
		for i, m := range moves {
			results[i] = WorkResult{Index: i, Move: m, Nodes: 1}
		}
		return uint64(len(moves)), results
	}

	pool := NewPool(workers, len(moves))
	pool.Start()
	go func() {
		for i, m := range moves {
			next, _ := engine.Apply(pos, m.From, m.Cand)
			pool.Submit(WorkItem{Index: i, Move: m, Pos: next, Depth: depth - 1})
		}
		pool.Close()
	}()

	results := make([]WorkResult, len(moves))
	var total uint64
	for res := range pool.Results() {
		results[res.Index] = res
		total += res.Nodes
	}
	return total, results
}
