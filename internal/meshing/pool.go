package meshing

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"voxmesh/internal/lattice"
	"voxmesh/internal/logger"
	"voxmesh/internal/voxel"
)

// ErrInvalidJob is reported in MeshResult for jobs that cannot be meshed.
var ErrInvalidJob = errors.New("meshing: invalid mesh job")

// MeshJob represents a meshing job request
type MeshJob struct {
	Coord      [3]int
	EdgeLength uint32
	Sampler    lattice.DensitySampler[voxel.Bool]
	// Result channel - will be sent the result when done
	ResultChan chan<- MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord    [3]int
	Mesh     MeshBuffers
	Duration time.Duration
	Error    error
}

// WorkerPool meshes independent chunks on a fixed set of goroutines.
// Each job samples its own lattice and quad buffer, so workers share no
// mutable state. Jobs already running are not interrupted by Shutdown.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking queues a job, waiting for space until ctx or the pool is done.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := runJob(job)
			if result.Error != nil {
				logger.Warn("mesh job failed", zap.Int("worker", id), zap.Ints("coord", result.Coord[:]), zap.Error(result.Error))
			}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

func runJob(job MeshJob) MeshResult {
	result := MeshResult{Coord: job.Coord}
	if job.EdgeLength == 0 || job.Sampler == nil {
		result.Error = ErrInvalidJob
		return result
	}
	start := time.Now()
	result.Mesh = GenerateMesh(job.EdgeLength, job.Sampler)
	result.Duration = time.Since(start)
	return result
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}
