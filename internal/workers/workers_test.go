// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/mock"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/service"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that records the order of Run and Stop calls.
type mockWorker struct {
	name string
	log  *[]string
}

func (m *mockWorker) Run(context.Context) {
	*m.log = append(*m.log, "run "+m.name)
}

func (m *mockWorker) Stop() {
	*m.log = append(*m.log, "stop "+m.name)
}

func TestWorkers_RunAndStop_Order(t *testing.T) {
	var log []string
	ws := &Workers{workers: []Worker{
		&mockWorker{name: "a", log: &log},
		&mockWorker{name: "b", log: &log},
	}}

	ws.Run(context.Background())
	ws.Stop()

	want := []string{"run a", "run b", "stop b", "stop a"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("call[%d]: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestNewClientWorkers_RefreshDisabled(t *testing.T) {
	ws := NewClientWorkers(&service.ClientServices{}, config.ClientWorkers{})
	if ws.Len() != 0 {
		t.Errorf("expected no workers, got %d", ws.Len())
	}
}

func TestNewClientWorkers_RefreshEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockConfigRefreshJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, time.Minute),
		job.EXPECT().Stop(),
	)

	ws := NewClientWorkers(&service.ClientServices{ConfigRefreshJob: job}, config.ClientWorkers{RefreshInterval: time.Minute})
	if ws.Len() != 1 {
		t.Fatalf("expected one worker, got %d", ws.Len())
	}

	ws.Run(ctx)
	ws.Stop()
}
