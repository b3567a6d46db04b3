//go:build linux

// Command timevirtctl is the reference controller for the time shim: it
// writes speedup changes to a shim's channel file, replays a recorded
// schedule of changes against one, and runs a small genuine-clock
// self-check. None of this is part of the shim itself — the base spec
// only specifies the channel's byte format, not how a controller decides
// what to write — but it is grounded directly in cmd/consumption's own
// cobra-CLI shape.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlab/timevirt/internal/realsym"
	"github.com/riftlab/timevirt/pkg/shimchannel"
	"github.com/riftlab/timevirt/pkg/vclock"
)

func main() {
	root := &cobra.Command{
		Use:   "timevirtctl",
		Short: "Controller for the time virtualization shim",
		Long: `timevirtctl writes speedup changes to a running shim's channel file,
replays a recorded schedule of speedup changes, and self-checks the genuine
system clocks the shim virtualizes.

Examples:
  timevirtctl set /tmp/time_control 2.0
  timevirtctl play schedule.yaml --channel /tmp/time_control
  timevirtctl check`,
	}

	root.AddCommand(newSetCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <channel-path> <speedup>",
		Short: "Write a single speedup value to a channel file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var speedup float32
			if _, err := fmt.Sscanf(args[1], "%f", &speedup); err != nil {
				return fmt.Errorf("parse speedup: %w", err)
			}
			if speedup <= 0 {
				return fmt.Errorf("speedup must be positive, got %v", speedup)
			}
			if err := shimchannel.WriteSpeedup(path, speedup); err != nil {
				return fmt.Errorf("write channel: %w", err)
			}
			slog.Info("wrote speedup", "path", path, "speedup", speedup)
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	var channelPath string

	cmd := &cobra.Command{
		Use:   "play <scenario.yaml>",
		Short: "Replay a recorded schedule of speedup changes against a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}
			return scenario.Play(cmd.Context(), channelPath)
		},
	}

	cmd.Flags().StringVar(&channelPath, "channel", shimchannel.DefaultPrefix, "channel file path to write to")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Read the genuine system clocks this shim would virtualize",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := realsym.NewSysReader()
			for _, c := range []vclock.ClockID{vclock.Wall, vclock.Mono, vclock.ProcCPU, vclock.ThreadCPU} {
				ts, err := reader.Read(c)
				if err != nil {
					slog.Warn("clock read failed", "clock", c, "error", err)
					continue
				}
				fmt.Printf("%-10s sec=%d nsec=%d\n", c, ts.Sec, ts.Nsec)
			}
			fmt.Println("wall (time.Now): " + time.Now().Format(time.RFC3339Nano))
			return nil
		},
	}
}
