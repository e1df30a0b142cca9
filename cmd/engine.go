package cmd

import (
	"fmt"

	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/internal/refdata"
	"github.com/pathfinder-ke/pathfinder/internal/scorer"
)

// engineDeps bundles the engine with the tables commands need directly.
type engineDeps struct {
	engine *core.Engine
	scorer *scorer.Scorer
	demand *refdata.Demand
	reqs   *refdata.Requirements
}

// buildEngine loads all reference tables and wires the recommendation engine.
// Empty paths fall back to the embedded defaults.
func buildEngine(cfg *contract.Config) (*engineDeps, error) {
	sc, err := scorer.Load(cfg.KeywordsPath)
	if err != nil {
		return nil, fmt.Errorf("load keyword taxonomy: %w", err)
	}
	demand, err := refdata.LoadDemand(cfg.DemandPath)
	if err != nil {
		return nil, fmt.Errorf("load demand table: %w", err)
	}
	catalog, err := refdata.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load career catalog: %w", err)
	}
	reqs, err := refdata.LoadRequirements(cfg.RequirementsPath)
	if err != nil {
		return nil, fmt.Errorf("load admission requirements: %w", err)
	}
	jobs, err := refdata.LoadJobs(cfg.JobsPath)
	if err != nil {
		return nil, fmt.Errorf("load job postings: %w", err)
	}

	return &engineDeps{
		engine: core.NewEngine(sc, demand, catalog, reqs, jobs, nil),
		scorer: sc,
		demand: demand,
		reqs:   reqs,
	}, nil
}
