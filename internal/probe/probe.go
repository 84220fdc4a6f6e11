// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package probe reports whether the daemon recorded in a pid file is running.
//
// The pid file path comes from the configuration. A relative path is resolved
// against the data directory, or against the directory holding the config
// file when no data directory is set. Every failure degrades to Unknown.
package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a probe when the caller's context has no deadline.
const DefaultTimeout = 2 * time.Second

// ErrNoPIDFile is returned when no pid file is configured or it is missing.
var ErrNoPIDFile = errors.New("no pid file")

// State is the daemon liveness.
type State int

const (
	Unknown State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Target names the files a probe inspects.
type Target struct {
	PIDFile string // value of the pid option, may be relative
	DataDir string // value of the datadir option
	ConfDir string // directory holding the config file
}

// Result is the outcome of one probe. Err explains an Unknown state.
type Result struct {
	State   State
	PID     int
	PIDFile string
	Err     error
}

// ResolvePIDPath returns the absolute pid file path for t, or "" when no pid
// file is configured.
func ResolvePIDPath(t Target) string {
	if t.PIDFile == "" {
		return ""
	}
	if filepath.IsAbs(t.PIDFile) {
		return t.PIDFile
	}
	base := t.DataDir
	if base == "" {
		base = t.ConfDir
	}
	return filepath.Join(base, t.PIDFile)
}

// ReadPID reads a process id from the file at path.
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrNoPIDFile, path)
		}
		return 0, fmt.Errorf("failed to read pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid pid in %s: %w", path, err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid pid %d in %s", pid, path)
	}
	return pid, nil
}

// Probe resolves the pid file of t and queries the process table. It returns
// Unknown with the cause in Err when ctx expires first.
func Probe(ctx context.Context, t Target) Result {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	done := make(chan Result, 1)
	go func() {
		done <- probe(t)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return Result{State: Unknown, PIDFile: ResolvePIDPath(t), Err: ctx.Err()}
	}
}

func probe(t Target) Result {
	path := ResolvePIDPath(t)
	if path == "" {
		return Result{State: Unknown, Err: ErrNoPIDFile}
	}

	pid, err := ReadPID(path)
	if err != nil {
		return Result{State: Unknown, PIDFile: path, Err: err}
	}

	alive, err := processAlive(pid)
	if err != nil {
		return Result{State: Unknown, PID: pid, PIDFile: path, Err: err}
	}
	if alive {
		return Result{State: Running, PID: pid, PIDFile: path}
	}
	return Result{State: Stopped, PID: pid, PIDFile: path}
}
