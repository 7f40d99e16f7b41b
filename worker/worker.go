package worker

import (
	"runtime"
	"sync"
	"time"

	"github.com/freerun/freerun/oerror"
	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes a single task. A panicking task is reported to sentry and does not take the worker down.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker task panicked: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues a function that may be CPU intensive, such as a whole simulation run. It blocks while every
// worker is busy and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}

// Wait submits every task and blocks until all of them have returned or panicked. It must not be called from
// inside a task.
func Wait(tasks ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		Submit(func() {
			defer wg.Done()
			task()
		})
	}
	wg.Wait()
}
