// Package dropin provides the public Go library API for dropin.
//
// dropin keeps versioned single files deployed into privileged,
// host-owned directories. This package exposes a Client over the
// deployments named in a dropin.yaml configuration, for embedding in
// other Go programs.
//
// # Basic Usage
//
//	client, err := dropin.New(dropin.Options{
//	    ConfigPath: "dropin.yaml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reconcile all deployments (cheap when nothing changed)
//	results, err := client.Check(ctx)
//
//	// Tear one down
//	results, err = client.Remove(ctx, "loader")
package dropin

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropin-dev/dropin/internal/config"
	"github.com/dropin-dev/dropin/internal/fsys"
	"github.com/dropin-dev/dropin/internal/notice"
	"github.com/dropin-dev/dropin/internal/reconcile"
	"github.com/dropin-dev/dropin/internal/settings"
)

// Options configures a dropin Client.
type Options struct {
	// ConfigPath is the path to the config file. Default: "dropin.yaml".
	ConfigPath string

	// SettingsPath overrides the settings file named in the config.
	SettingsPath string

	// Sink receives diagnostics. Default: a discard sink.
	Sink Sink

	// Store overrides the file-backed settings store, for embedders
	// with their own persistence.
	Store Store
}

// DeploymentResult pairs a deployment name with its operation outcome.
type DeploymentResult struct {
	Name   string
	Result Result
}

// DeploymentStatus describes the observed state of one deployment.
type DeploymentStatus struct {
	Name             string
	File             string
	Dir              string
	Version          string
	InstalledVersion string // "" when not recorded
	Present          bool   // per the installed listing
	Writable         bool   // diagnostic, never gates operations
}

// Client is the main entry point for the dropin library.
type Client struct {
	cfg   *config.Config
	fs    fsys.Capability
	store Store
	sink  Sink
}

// New creates a Client from the configuration at Options.ConfigPath.
func New(opts Options) (*Client, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = "dropin.yaml"
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	settingsPath := cfg.SettingsFile
	if opts.SettingsPath != "" {
		settingsPath = opts.SettingsPath
	}

	store := opts.Store
	if store == nil {
		store = settings.NewFileStore(settingsPath)
	}

	sink := opts.Sink
	if sink == nil {
		sink = notice.Nop{}
	}

	return &Client{
		cfg:   cfg,
		fs:    fsys.NewOS(),
		store: store,
		sink:  sink,
	}, nil
}

// Check reconciles the named deployments (all when names is empty),
// installing where the deployed copy is missing or outdated.
func (c *Client) Check(ctx context.Context, names ...string) ([]DeploymentResult, error) {
	return c.run(ctx, names, func(r *reconcile.Reconciler) (Result, error) {
		return r.Check(ctx), nil
	})
}

// Install unconditionally deploys the named deployments, as on host
// activation. Failures are returned as result values, never as errors.
func (c *Client) Install(ctx context.Context, names ...string) ([]DeploymentResult, error) {
	return c.run(ctx, names, func(r *reconcile.Reconciler) (Result, error) {
		return r.OnActivate(ctx), nil
	})
}

// Remove tears the named deployments down, as on host deactivation. A
// deployment with strict teardown turns a failed removal into an error;
// remaining deployments are still processed and all errors are joined.
func (c *Client) Remove(ctx context.Context, names ...string) ([]DeploymentResult, error) {
	return c.run(ctx, names, func(r *reconcile.Reconciler) (Result, error) {
		return r.OnDeactivate(ctx)
	})
}

// Status reports the observed state of the named deployments without
// changing anything.
func (c *Client) Status(ctx context.Context, names ...string) ([]DeploymentStatus, error) {
	selected, err := c.selectDeployments(names)
	if err != nil {
		return nil, err
	}

	var statuses []DeploymentStatus
	for _, d := range selected {
		r, err := c.reconcilerFor(d)
		if err != nil {
			return nil, err
		}

		st := DeploymentStatus{
			Name:     d.Name,
			File:     d.Filename,
			Dir:      d.DestDir,
			Version:  d.Version,
			Writable: r.IsWritable(),
		}

		lister := fsys.NewDirLister(d.DestDir)
		installed, listErr := lister.ListInstalled()
		if listErr == nil {
			for _, name := range installed {
				if name == d.Filename {
					st.Present = true
					break
				}
			}
		}

		if d.Persisted() {
			rec, ok, recErr := c.store.Get(d.SettingsKey)
			if recErr == nil && ok {
				st.InstalledVersion = rec.InstalledVersion
			}
		}

		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (c *Client) run(ctx context.Context, names []string, op func(*reconcile.Reconciler) (Result, error)) ([]DeploymentResult, error) {
	selected, err := c.selectDeployments(names)
	if err != nil {
		return nil, err
	}

	var results []DeploymentResult
	var errs []error
	for _, d := range selected {
		r, err := c.reconcilerFor(d)
		if err != nil {
			return results, err
		}
		res, opErr := op(r)
		results = append(results, DeploymentResult{Name: d.Name, Result: res})
		if opErr != nil {
			errs = append(errs, fmt.Errorf("deployment %s: %w", d.Name, opErr))
		}
	}
	return results, errors.Join(errs...)
}

func (c *Client) reconcilerFor(d config.Deployment) (*reconcile.Reconciler, error) {
	spec := reconcile.Spec{
		SourcePath:       d.Source,
		DestDir:          d.DestDir,
		DestFilename:     d.Filename,
		Version:          d.Version,
		SettingsKey:      d.EffectiveSettingsKey(),
		StrictOnTeardown: d.StrictTeardown,
	}
	return reconcile.New(spec, c.fs, nil, c.store, c.sink)
}

func (c *Client) selectDeployments(names []string) ([]config.Deployment, error) {
	if len(names) == 0 {
		return c.cfg.Deployments, nil
	}

	byName := make(map[string]config.Deployment, len(c.cfg.Deployments))
	for _, d := range c.cfg.Deployments {
		byName[d.Name] = d
	}

	var selected []config.Deployment
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("deployment '%s' not found in config", name)
		}
		selected = append(selected, d)
	}
	return selected, nil
}
