package repology

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Replay serves data from a single pre-fetched JSON document, typically
// piped in on stdin. The input is read once, at construction.
//
// For Project the document is either a package array (one project
// response, returned for any name) or an object mapping project names to
// package arrays. For the problem queries it is a problem array which is
// filtered locally.
type Replay struct {
	data []byte
	log  *zap.Logger

	pkgOnce      sync.Once
	pkgList      []Package
	pkgByProject map[string][]Package
	pkgErr       error

	problemOnce sync.Once
	problems    []Problem
	problemErr  error
}

// NewReplay drains r and returns a Replay over its contents.
func NewReplay(r io.Reader, log *zap.Logger) (*Replay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading replay input: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("replay document loaded", zap.Int("bytes", len(data)))
	return &Replay{data: data, log: log}, nil
}

// Project returns the packages the document holds for name.
func (r *Replay) Project(_ context.Context, name string) ([]Package, error) {
	r.pkgOnce.Do(r.decodePackages)
	if r.pkgErr != nil {
		return nil, r.pkgErr
	}
	if r.pkgByProject != nil {
		return slices.Clone(r.pkgByProject[name]), nil
	}
	return slices.Clone(r.pkgList), nil
}

// ProblemsForRepo returns the document's problems whose repo matches.
func (r *Replay) ProblemsForRepo(_ context.Context, repo string) ([]Problem, error) {
	r.problemOnce.Do(r.decodeProblems)
	if r.problemErr != nil {
		return nil, r.problemErr
	}
	return lo.Filter(r.problems, func(p Problem, _ int) bool {
		return p.Repo == repo
	}), nil
}

// ProblemsForMaintainer returns the document's problems whose maintainer matches.
func (r *Replay) ProblemsForMaintainer(_ context.Context, maintainer string) ([]Problem, error) {
	r.problemOnce.Do(r.decodeProblems)
	if r.problemErr != nil {
		return nil, r.problemErr
	}
	return lo.Filter(r.problems, func(p Problem, _ int) bool {
		return p.Maintainer == maintainer
	}), nil
}

func (r *Replay) decodePackages() {
	trimmed := bytes.TrimSpace(r.data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var byProject map[string][]Package
		if err := json.Unmarshal(trimmed, &byProject); err != nil {
			r.pkgErr = fmt.Errorf("parsing replay document as project map: %w", err)
			return
		}
		if byProject == nil {
			byProject = map[string][]Package{}
		}
		r.pkgByProject = byProject
		r.log.Debug("replay document holds a project map", zap.Int("projects", len(byProject)))
		return
	}

	var pkgs []Package
	if err := json.Unmarshal(trimmed, &pkgs); err != nil {
		r.pkgErr = fmt.Errorf("parsing replay document as package list: %w", err)
		return
	}
	r.pkgList = pkgs
}

func (r *Replay) decodeProblems() {
	var problems []Problem
	if err := json.Unmarshal(r.data, &problems); err != nil {
		r.problemErr = fmt.Errorf("parsing replay document as problem list: %w", err)
		return
	}
	r.problems = problems
}
