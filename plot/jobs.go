package plot

import (
	"sync"

	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

/**
 * @brief Describes one plot to be rendered by a JobSystem.
 */
type Job struct {
	/** @brief File name of the plot, without extension. */
	Name   string
	Points []math.Vec2
	/** @brief Invoked with the written path on success. Optional. */
	OnComplete func(path string)
	/** @brief Invoked when rendering or writing fails. Optional. */
	OnFailure func(name string, err error)
}

// JobSystem renders plots into one directory on a fixed number of workers.
type JobSystem struct {
	numWorkers int
	dir        string
	opts       Options
	jobQueue   chan Job
	wg         sync.WaitGroup
}

func NewJobSystem(numWorkers int, channelSize int, dir string, o Options) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, core.ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, core.ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		dir:        dir,
		opts:       o,
		jobQueue:   make(chan Job, channelSize),
	}
	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				path, err := WritePNG(js.dir, job.Name, job.Points, js.opts)
				if err != nil {
					core.LogError("plot %s: %v", job.Name, err)
					if job.OnFailure != nil {
						job.OnFailure(job.Name, err)
					}
					continue
				}
				if job.OnComplete != nil {
					job.OnComplete(path)
				}
			}
		}()
	}
}

/**
 * @brief Queues the job, blocking while the queue is full.
 */
func (js *JobSystem) Submit(j Job) {
	js.jobQueue <- j
}

/**
 * @brief Stops accepting jobs and waits for the queued ones to finish.
 */
func (js *JobSystem) Shutdown() {
	close(js.jobQueue)
	js.wg.Wait()
}
