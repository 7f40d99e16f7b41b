package worker

import (
	"sync/atomic"
	"testing"
)

func TestWaitRunsEveryTask(t *testing.T) {
	var n atomic.Int32
	tasks := make([]func(), 32)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	Wait(tasks...)
	if n.Load() != 32 {
		t.Fatalf("expected 32 tasks to run, got %d", n.Load())
	}
}

func TestPanickingTaskKeepsPool(t *testing.T) {
	var n atomic.Int32
	tasks := []func(){
		func() { panic("boom") },
		func() { n.Add(1) },
	}
	Wait(tasks...)
	Wait(tasks...)
	if n.Load() != 2 {
		t.Fatalf("expected the healthy tasks to run despite panics, got %d", n.Load())
	}
}
