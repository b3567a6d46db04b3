//go:build linux

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riftlab/timevirt/pkg/shimchannel"
)

// scenarioStep is one entry in a scenario file: at wall-clock offset At
// from the start of playback, write Speedup to the channel.
type scenarioStep struct {
	At      time.Duration `yaml:"at"`
	Speedup float32       `yaml:"speedup"`
}

// scenario is an ordered list of steps, as loaded from a YAML file like:
//
//	- at: 0s
//	  speedup: 1.0
//	- at: 5s
//	  speedup: 2.0
//	- at: 10s
//	  speedup: 0.25
type scenario struct {
	Steps []scenarioStep
}

func loadScenario(path string) (*scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []scenarioStep
	if err := yaml.Unmarshal(b, &steps); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario{Steps: steps}, nil
}

// Play writes each step to channelPath at its scheduled offset, in order,
// blocking until the last step fires or ctx is cancelled.
func (s *scenario) Play(ctx context.Context, channelPath string) error {
	start := time.Now()
	for _, step := range s.Steps {
		deadline := start.Add(step.At)
		wait := time.Until(deadline)
		if wait > 0 {
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		if err := shimchannel.WriteSpeedup(channelPath, step.Speedup); err != nil {
			return fmt.Errorf("write step at %s: %w", step.At, err)
		}
		slog.Info("applied scenario step", "at", step.At, "speedup", step.Speedup)
	}
	return nil
}
