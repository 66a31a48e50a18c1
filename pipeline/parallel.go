// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// RunCommands runs the given commands concurrently, limiting the number
// running at any time to procs. Each command's output is buffered and
// written to log when the command finishes, so output from concurrent
// commands does not interleave. Stdout and Stderr already set on a
// command are left alone. The first error is returned after all
// commands have finished.
func RunCommands(cmds []*exec.Cmd, procs int, log io.Writer) error {
	if procs < 1 {
		procs = 1
	}
	if log == nil {
		log = io.Discard
	}
	var (
		limit = make(chan struct{}, procs)
		wg    sync.WaitGroup

		mu    sync.Mutex
		first error
	)
	for _, cmd := range cmds {
		wg.Add(1)
		limit <- struct{}{}
		go func(cmd *exec.Cmd) {
			defer func() {
				<-limit
				wg.Done()
			}()
			b := &bytes.Buffer{}
			if cmd.Stdout == nil {
				cmd.Stdout = b
			}
			if cmd.Stderr == nil {
				cmd.Stderr = b
			}
			err := cmd.Run()
			mu.Lock()
			io.Copy(log, b)
			if err != nil && first == nil {
				first = fmt.Errorf("pipeline: %s: %w", cmd.Path, err)
			}
			mu.Unlock()
		}(cmd)
	}
	wg.Wait()
	return first
}
