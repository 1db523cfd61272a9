// Package release implements the release-preparation pipeline.
// This file contains the Orchestrator which sequences the pipeline stages.
package release

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/ctxutil"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/semver"
	"github.com/relcut/relcut/internal/vcs"
	"github.com/relcut/relcut/internal/version"
)

// Orchestrator sequences the release pipeline around its three external
// collaborators. It owns no version arithmetic and no source-control
// mechanics; it only orders the calls, gates each stage on the previous
// one's success, and aborts fail-fast with no rollback.
type Orchestrator struct {
	repo      vcs.Runner
	authority version.Authority
	query     version.Query
	cfg       *config.Config
	logger    zerolog.Logger
}

// New creates an Orchestrator with the given collaborators.
func New(repo vcs.Runner, authority version.Authority, query version.Query, cfg *config.Config, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		repo:      repo,
		authority: authority,
		query:     query,
		cfg:       cfg,
		logger:    logger.With().Str("component", "release").Logger(),
	}
}

// stage is one step of the linear pipeline. Stages run strictly in order;
// the first failure aborts the run with no compensating undo.
type stage struct {
	name string
	run  func(ctx context.Context) error
}

// Run executes the release pipeline for the given release type.
//
// Stage order: dirty-check, tool-check, release, snapshot-bump, query,
// remark-snapshot, persist. A failure past the release stage leaves the
// repository in a released-but-not-advanced state that requires manual
// recovery; this is logged loudly but deliberately not rolled back.
func (o *Orchestrator) Run(ctx context.Context, releaseType Type) (*Result, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	// Defensive re-validation: Type is a string type, so a caller can hand
	// us an unvalidated literal. Nothing external may run on a bad value.
	if _, err := ParseType(releaseType.String()); err != nil {
		return nil, err
	}

	result := &Result{ReleaseType: releaseType}

	stages := []stage{
		{name: "dirty-check", run: o.stageDirtyCheck},
		{name: "tool-check", run: o.stageToolCheck},
		{name: "release", run: func(ctx context.Context) error {
			return o.stageRelease(ctx, releaseType)
		}},
		{name: "snapshot-bump", run: o.stageSnapshotBump},
		{name: "query", run: func(ctx context.Context) error {
			return o.stageQuery(ctx, result)
		}},
		{name: "remark-snapshot", run: func(ctx context.Context) error {
			return o.stageReMark(ctx, result)
		}},
		{name: "persist", run: func(ctx context.Context) error {
			return o.stagePersist(ctx, result)
		}},
	}

	o.logger.Info().
		Str("release_type", releaseType.String()).
		Msg("starting release pipeline")

	for _, s := range stages {
		if err := o.runStage(ctx, s); err != nil {
			return nil, err
		}
	}

	o.logger.Info().
		Str("release_type", releaseType.String()).
		Str("next_development", result.NextDevelopment.String()).
		Str("branch", result.Branch).
		Msg("release pipeline completed")

	return result, nil
}

// runStage executes one stage with logging and timing.
func (o *Orchestrator) runStage(ctx context.Context, s stage) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	o.logger.Debug().Str("stage", s.name).Msg("executing stage")

	startTime := time.Now()
	err := s.run(ctx)
	duration := time.Since(startTime)

	if err != nil {
		o.logger.Error().
			Str("stage", s.name).
			Int64("duration_ms", duration.Milliseconds()).
			Err(err).
			Msg("stage failed, aborting pipeline")
		return fmt.Errorf("stage %s: %w", s.name, err)
	}

	o.logger.Debug().
		Str("stage", s.name).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("stage completed")

	return nil
}

// stageDirtyCheck aborts the run when the working tree carries uncommitted
// changes to tracked files. This is the single most important gate: the
// pipeline never mutates version files or history on top of unreviewed
// local changes.
func (o *Orchestrator) stageDirtyCheck(ctx context.Context) error {
	status, err := o.repo.Status(ctx)
	if err != nil {
		return err
	}

	if status.Dirty() {
		return fmt.Errorf("%w: %d staged, %d unstaged tracked changes",
			errors.ErrDirtyWorkTree, len(status.Staged), len(status.Unstaged))
	}

	return nil
}

// stageToolCheck ensures the authority and query tools are available,
// installing them when missing. Idempotent, no semantic effect on versions.
func (o *Orchestrator) stageToolCheck(ctx context.Context) error {
	if err := o.authority.EnsureInstalled(ctx); err != nil {
		return err
	}
	return o.query.EnsureInstalled(ctx)
}

// stageRelease delegates the full release to the version authority: bump
// from the pre-release version, update the manifest, publish, tag. One
// opaque call; non-success aborts with no snapshot re-bump attempted.
func (o *Orchestrator) stageRelease(ctx context.Context, releaseType Type) error {
	if err := o.authority.Release(ctx, releaseType.String()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrReleaseFailed, err)
	}
	return nil
}

// stageSnapshotBump advances the manifest to the next patch version.
// Always patch, independent of the release type: the post-release
// development version advances by exactly one patch level.
func (o *Orchestrator) stageSnapshotBump(ctx context.Context) error {
	if err := o.authority.Release(ctx, TypePatch.String()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSnapshotBump, err)
	}
	return nil
}

// stageQuery reads the manifest's current version back and records the
// upcoming development version on the result. Immediately after the
// snapshot bump the manifest must hold a bare semver with no snapshot
// marker; anything else means the authority misbehaved.
func (o *Orchestrator) stageQuery(ctx context.Context, result *Result) error {
	current, err := o.query.Current(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSnapshotBump, err)
	}

	v, err := semver.Parse(current)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSnapshotBump, err)
	}
	if v.Snapshot {
		return fmt.Errorf("%w: manifest version %s still carries the snapshot marker after bump",
			errors.ErrSnapshotBump, v)
	}

	result.NextDevelopment = v.WithSnapshot()
	return nil
}

// stageReMark rewrites the manifest version with the -SNAPSHOT suffix, so
// the development branch always reads as the next release, marked as
// unreleased.
func (o *Orchestrator) stageReMark(ctx context.Context, result *Result) error {
	manifest := o.cfg.Release.ManifestFiles[0]
	if err := o.authority.SetVersion(ctx, manifest, result.NextDevelopment.String()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSnapshotBump, err)
	}
	return nil
}

// stagePersist stages the manifest files, commits with the fixed snapshot
// message, and pushes to the configured remote. On failure the local
// version-bump changes remain on disk for manual recovery.
func (o *Orchestrator) stagePersist(ctx context.Context, result *Result) error {
	if err := o.repo.Add(ctx, o.cfg.Release.ManifestFiles); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistFailed, err)
	}

	if err := o.repo.Commit(ctx, o.cfg.Release.CommitMessage); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistFailed, err)
	}

	branch := o.cfg.Git.Branch
	if branch == "" {
		current, err := o.repo.CurrentBranch(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrPersistFailed, err)
		}
		branch = current
	}
	result.Branch = branch

	if err := o.repo.Push(ctx, o.cfg.Git.Remote, branch); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistFailed, err)
	}

	return nil
}
