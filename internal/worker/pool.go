// Package worker provides background preview analysis for stored tracks.
// After a playlist is created, each track's preview MP3 is fetched and its
// measured energy written back to the repository. Jobs are fire-and-forget.
package worker

import (
	"context"
	"log"
	"sync"

	"github.com/vibechef/vibechef/internal/core/ports"
)

// Job identifies one track preview to analyze.
type Job struct {
	TrackID    string
	PreviewURL string
}

// Pool manages background workers for preview analysis.
type Pool struct {
	repo ports.PlaylistRepository
	jobs chan Job
	wg   sync.WaitGroup
}

// NewPool creates a pool with the given queue size.
func NewPool(repo ports.PlaylistRepository, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		repo: repo,
		jobs: make(chan Job, queueSize),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking; full queues drop the job.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		log.Printf("WARN worker: dropping preview analysis for track %s", job.TrackID)
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		return
	}

	energy, err := AnalyzePreviewFunc(job.PreviewURL)
	if err != nil {
		log.Printf("WARN worker: preview analysis for track %s: %v", job.TrackID, err)
		return
	}

	if err := p.repo.UpdateTrackEnergy(context.Background(), job.TrackID, energy); err != nil {
		log.Printf("WARN worker: failed to update track %s: %v", job.TrackID, err)
		return
	}
	log.Printf("worker: track %s preview energy %.3f", job.TrackID, energy)
}
