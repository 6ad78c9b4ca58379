package orchestrator

import (
	"fmt"

	"github.com/amishk599/bankradar/internal/model"
)

// Task is one fetch: a source searched for a keyword. An empty keyword fetches
// the source unfiltered.
type Task struct {
	Source  string `json:"source"`
	Keyword string `json:"keyword"`
	Hours   int    `json:"hours"`
	Limit   int    `json:"limit"`
}

func (t Task) String() string {
	if t.Keyword == "" {
		return t.Source
	}
	return fmt.Sprintf("%s/%q", t.Source, t.Keyword)
}

// BuildTasks returns one task per (source, keyword) pair. With no keywords each
// source gets a single unfiltered task.
func BuildTasks(sources, keywords []string, hours, limit int) []Task {
	if len(keywords) == 0 {
		keywords = []string{""}
	}
	tasks := make([]Task, 0, len(sources)*len(keywords))
	for _, s := range sources {
		for _, k := range keywords {
			tasks = append(tasks, Task{Source: s, Keyword: k, Hours: hours, Limit: limit})
		}
	}
	return tasks
}

// TaskResult is either a Success or a Failure.
type TaskResult interface {
	Of() Task
	isTaskResult()
}

// Success carries the records one task fetched.
type Success struct {
	Task    Task
	Records []model.RawPosting
}

// Failure records why a task produced nothing.
type Failure struct {
	Task    Task
	Message string
}

func (s Success) Of() Task { return s.Task }
func (f Failure) Of() Task { return f.Task }

func (Success) isTaskResult() {}
func (Failure) isTaskResult() {}

// Flatten tags every record of every successful task with its keyword. Records
// missing a source inherit the task's.
func Flatten(results []TaskResult) []model.Candidate {
	var out []model.Candidate
	for _, r := range results {
		s, ok := r.(Success)
		if !ok {
			continue
		}
		for _, rec := range s.Records {
			if rec.Source == "" {
				rec.Source = s.Task.Source
			}
			out = append(out, model.Candidate{RawPosting: rec, Keyword: s.Task.Keyword})
		}
	}
	return out
}

// Failures returns the failed tasks in results.
func Failures(results []TaskResult) []Failure {
	var out []Failure
	for _, r := range results {
		if f, ok := r.(Failure); ok {
			out = append(out, f)
		}
	}
	return out
}
