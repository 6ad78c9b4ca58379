package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

// WorkerResponse is what a worker process writes to stdout.
type WorkerResponse struct {
	Records []model.RawPosting `json:"records"`
	Error   string             `json:"error,omitempty"`
}

// ProcessRunner runs every task in a fresh child process, so a crashing or
// hanging scraper cannot take the parent down. The child receives the task as
// JSON on stdin and answers with a WorkerResponse on stdout.
type ProcessRunner struct {
	Path    string        // executable to start
	Args    []string      // arguments selecting worker mode
	Env     []string      // extra environment, appended to the parent's
	Timeout time.Duration // zero means no deadline
	Stderr  io.Writer     // child log output; nil discards it
}

// Run starts the worker, feeds it t and decodes its answer. The child is
// killed when the timeout elapses or ctx is cancelled.
func (r *ProcessRunner) Run(ctx context.Context, t Task) ([]model.RawPosting, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	in, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encoding task %s: %w", t, err)
	}

	cmd := exec.CommandContext(ctx, r.Path, r.Args...)
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.Stdin = bytes.NewReader(in)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	cmd.WaitDelay = time.Second

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("worker for %s: %w", t, ctx.Err())
	}

	var resp WorkerResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("worker for %s: %w", t, runErr)
		}
		return nil, fmt.Errorf("decoding worker output for %s: %w", t, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("worker for %s: %s", t, resp.Error)
	}
	if runErr != nil {
		return nil, fmt.Errorf("worker for %s: %w", t, runErr)
	}
	return resp.Records, nil
}

// ServeWorker is the child side of ProcessRunner: it reads one task from in,
// runs it with runner and writes the response to out. The returned error is
// the task's own error, already reported in the response.
func ServeWorker(ctx context.Context, runner Runner, in io.Reader, out io.Writer) error {
	var t Task
	dec := json.NewDecoder(in)
	if err := dec.Decode(&t); err != nil {
		err = fmt.Errorf("decoding task: %w", err)
		writeResponse(out, WorkerResponse{Error: err.Error()})
		return err
	}
	if strings.TrimSpace(t.Source) == "" {
		err := errors.New("task has no source")
		writeResponse(out, WorkerResponse{Error: err.Error()})
		return err
	}

	records, err := runner.Run(ctx, t)
	if err != nil {
		writeResponse(out, WorkerResponse{Error: err.Error()})
		return err
	}
	if records == nil {
		records = []model.RawPosting{}
	}
	return writeResponse(out, WorkerResponse{Records: records})
}

func writeResponse(out io.Writer, resp WorkerResponse) error {
	if err := json.NewEncoder(out).Encode(resp); err != nil {
		return fmt.Errorf("writing worker response: %w", err)
	}
	return nil
}
