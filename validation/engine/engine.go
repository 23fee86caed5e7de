/*
Copyright 2024 The AzMig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package engine drives a full validation run: it validates and
// deduplicates the declared projects and machines, optionally matches
// unassigned machines to projects, and runs the landing zone tier followed
// by the server tier on bounded worker pools. The engine always produces a
// Run; provider failures and bad declarations become outcomes, never
// errors.
package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mayoit/azmig-tool-assistant/azure/scope"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
	"github.com/mayoit/azmig-tool-assistant/validation/landingzone"
	"github.com/mayoit/azmig-tool-assistant/validation/servers"
)

// maxPoolSize caps the worker pools regardless of the host's core count.
const maxPoolSize = 8

// MatchFunc assigns machines without a project reference to declared
// projects, see validation/matcher.
type MatchFunc func(ctx context.Context, machines []validation.MachineDecl) []validation.MachineDecl

// projectRunner runs the landing zone checks of one project.
type projectRunner interface {
	Validate(ctx context.Context) validation.ProjectReadiness
}

// machineRunner runs the server checks of one machine.
type machineRunner interface {
	Validate(ctx context.Context) validation.MachineReadiness
}

// Options configures an Engine.
type Options struct {
	Scope  *scope.ValidationScope
	Config *config.Resolved
	// Match is the optional matcher pre-pass applied to machines declared
	// without a project reference.
	Match MatchFunc
}

// Engine runs two-tier validation over declared projects and machines.
type Engine struct {
	scope  *scope.ValidationScope
	config *config.Resolved
	match  MatchFunc

	newProjectRunner func(project validation.ProjectDecl, machines []validation.MachineDecl) (projectRunner, error)
	newMachineRunner func(machine validation.MachineDecl, project validation.ProjectDecl) (machineRunner, error)
	now              func() time.Time
}

// New creates an engine for one validation run.
func New(opts Options) (*Engine, error) {
	if opts.Scope == nil {
		return nil, errors.New("engine requires a validation scope")
	}
	if opts.Config == nil {
		return nil, errors.New("engine requires a resolved config")
	}
	e := &Engine{
		scope:  opts.Scope,
		config: opts.Config,
		match:  opts.Match,
		now:    time.Now,
	}
	e.newProjectRunner = func(project validation.ProjectDecl, machines []validation.MachineDecl) (projectRunner, error) {
		projectScope, err := scope.NewProjectScope(e.scope, project)
		if err != nil {
			return nil, err
		}
		return landingzone.New(projectScope, e.config, machines)
	}
	e.newMachineRunner = func(machine validation.MachineDecl, project validation.ProjectDecl) (machineRunner, error) {
		machineScope, err := scope.NewMachineScope(e.scope, machine)
		if err != nil {
			return nil, err
		}
		projectScope, err := scope.NewProjectScope(e.scope, project)
		if err != nil {
			return nil, err
		}
		return servers.New(machineScope, projectScope, e.config)
	}
	return e, nil
}

// Run validates every declared project and machine and returns the
// assembled result. The engine alone reads the wall clock; everything else
// is deterministic given the inputs, the resolved config and the provider
// responses.
func (e *Engine) Run(ctx context.Context, projects []validation.ProjectDecl, machines []validation.MachineDecl) validation.Run {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "engine.Engine.Run")
	defer done()

	run := validation.Run{
		Projects:          make(map[string]validation.ProjectReadiness),
		StartedAt:         e.now().UTC(),
		ConfigFingerprint: e.config.Fingerprint(),
	}

	// Static input validation and dedup. The first declaration of a key
	// wins; a duplicate with different fields earns the project a warning.
	declared := make(map[string]validation.ProjectDecl)
	conflicted := make(map[string]bool)
	var valid []validation.ProjectDecl
	for _, project := range projects {
		key := project.Key().String()
		if err := project.Validate(); err != nil {
			run.Projects[key] = validation.ProjectReadiness{
				ProjectKey: project.Key(),
				Outcomes:   []validation.Outcome{validation.InputOutcome(err)},
				RolledUp:   validation.SeverityCritical,
			}
			continue
		}
		if first, ok := declared[key]; ok {
			if first != project {
				conflicted[key] = true
			}
			continue
		}
		declared[key] = project
		valid = append(valid, project)
	}

	machineResults := make([]validation.MachineReadiness, len(machines))
	var validMachines []validation.MachineDecl
	var validIndex []int
	for i, machine := range machines {
		if err := machine.Validate(); err != nil {
			machineResults[i] = validation.MachineReadiness{
				TargetName: machine.TargetName,
				ProjectKey: machine.ProjectKey,
				Outcomes:   []validation.Outcome{validation.InputOutcome(err)},
				RolledUp:   validation.SeverityCritical,
			}
			continue
		}
		validMachines = append(validMachines, machine)
		validIndex = append(validIndex, i)
	}

	if e.match != nil {
		validMachines = e.match(ctx, validMachines)
	}

	machinesByProject := make(map[string][]validation.MachineDecl)
	for _, machine := range validMachines {
		key := machine.ProjectKey.String()
		machinesByProject[key] = append(machinesByProject[key], machine)
	}

	limit := 1
	if e.config.Global().ParallelExecution {
		limit = min(runtime.GOMAXPROCS(0)*2, maxPoolSize)
	}
	totalScopes := len(valid) + len(validMachines)
	if budget := e.runBudget(totalScopes, limit); budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}
	log.V(4).Info("starting validation run",
		"projects", len(valid), "machines", len(validMachines), "parallelism", limit)

	// Tier 1.
	projectResults := make([]validation.ProjectReadiness, len(valid))
	var pool errgroup.Group
	pool.SetLimit(limit)
	for i := range valid {
		i, project := i, valid[i]
		pool.Go(func() error {
			projectResults[i] = e.runProject(ctx, project, machinesByProject[project.Key().String()])
			return nil
		})
	}
	_ = pool.Wait()
	for i, project := range valid {
		readiness := projectResults[i]
		if conflicted[project.Key().String()] {
			readiness.Outcomes = append(readiness.Outcomes, validation.Outcome{
				CheckID:  validation.CheckInput,
				Severity: validation.SeverityWarning,
				Summary:  "Conflicting project declaration",
				Detail:   "another declaration shares this project key with different fields; the first declaration was used",
			})
			readiness.RolledUp = validation.RollUp(readiness.Outcomes)
		}
		run.Projects[project.Key().String()] = readiness
	}

	// Tier 2. Machines whose project is unknown or failed Tier-1 are gated
	// without consuming a pool slot.
	var machinePool errgroup.Group
	machinePool.SetLimit(limit)
	for n := range validMachines {
		machine, idx := validMachines[n], validIndex[n]
		if readiness, gated := servers.Gate(machine, run.Projects); gated {
			machineResults[idx] = readiness
			continue
		}
		machinePool.Go(func() error {
			machineResults[idx] = e.runMachine(ctx, machine, declared[machine.ProjectKey.String()])
			return nil
		})
	}
	_ = machinePool.Wait()

	run.Machines = machineResults
	run.FinishedAt = e.now().UTC()
	return run
}

// runBudget is the wall-clock allowance of the whole run: every scope gets
// the configured per-scope timeout, and scopes beyond the pool size queue.
func (e *Engine) runBudget(scopes, limit int) time.Duration {
	timeout := e.config.Global().TimeoutSeconds
	if scopes == 0 || timeout <= 0 {
		return 0
	}
	waves := (scopes + limit - 1) / limit
	return time.Duration(timeout) * time.Second * time.Duration(waves)
}

func (e *Engine) runProject(ctx context.Context, project validation.ProjectDecl, machines []validation.MachineDecl) validation.ProjectReadiness {
	if ctx.Err() != nil {
		return validation.ProjectReadiness{
			ProjectKey: project.Key(),
			Outcomes:   []validation.Outcome{validation.CancelledOutcome(validation.CheckSkipped)},
			RolledUp:   validation.SeverityWarning,
		}
	}
	runner, err := e.newProjectRunner(project, machines)
	if err != nil {
		return validation.ProjectReadiness{
			ProjectKey: project.Key(),
			Outcomes: []validation.Outcome{{
				CheckID:  validation.CheckInput,
				Severity: validation.SeverityCritical,
				Summary:  "validation could not start",
				Detail:   err.Error(),
			}},
			RolledUp: validation.SeverityCritical,
		}
	}
	scopeCtx, cancel := e.scopeContext(ctx)
	defer cancel()
	return runner.Validate(scopeCtx)
}

func (e *Engine) runMachine(ctx context.Context, machine validation.MachineDecl, project validation.ProjectDecl) validation.MachineReadiness {
	if ctx.Err() != nil {
		return validation.MachineReadiness{
			TargetName: machine.TargetName,
			ProjectKey: machine.ProjectKey,
			Outcomes:   []validation.Outcome{validation.CancelledOutcome(validation.CheckSkipped)},
			RolledUp:   validation.SeverityWarning,
		}
	}
	runner, err := e.newMachineRunner(machine, project)
	if err != nil {
		return validation.MachineReadiness{
			TargetName: machine.TargetName,
			ProjectKey: machine.ProjectKey,
			Outcomes: []validation.Outcome{{
				CheckID:  validation.CheckInput,
				Severity: validation.SeverityCritical,
				Summary:  "validation could not start",
				Detail:   err.Error(),
			}},
			RolledUp: validation.SeverityCritical,
		}
	}
	scopeCtx, cancel := e.scopeContext(ctx)
	defer cancel()
	return runner.Validate(scopeCtx)
}

// scopeContext bounds one project or machine to the per-scope timeout.
func (e *Engine) scopeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := e.config.Global().TimeoutSeconds
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
}
