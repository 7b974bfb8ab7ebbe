package engine

import (
	"github.com/piwi3910/tentlayout/internal/applog"
	"github.com/piwi3910/tentlayout/internal/model"
)

var log = applog.WithComponent("engine")

// Calculate is the core engine's public entrypoint: a pure function of
// (tent, inventory, constraints) producing a ranked, named set of
// candidate layouts. It validates the request, resolves defaults, runs the
// orientation driver (C6, which itself drives C2-C5), selects named
// scenarios (C7), and assembles them into the external response (C8).
func Calculate(req model.CalculationRequest) (model.CalculationResponse, error) {
	log.Debug().Float64("length", req.Tent.Length).Float64("width", req.Tent.Width).Msg("calculate requested")

	constraints := model.DefaultConstraints()
	if req.Constraints != nil {
		constraints = *req.Constraints
	}

	if err := Validate(req, constraints); err != nil {
		log.Warn().Err(err).Msg("request rejected by validation")
		return model.CalculationResponse{}, err
	}

	inventory := model.DefaultInventory()
	if req.Inventory != nil {
		inventory = *req.Inventory
	}

	if err := CheckInventoryArea(inventory, constraints); err != nil {
		log.Warn().Err(err).Msg("request rejected for insufficient inventory area")
		return model.CalculationResponse{}, err
	}

	pool, err := RunOrientations(req.Tent, inventory, constraints)
	if err != nil {
		log.Error().Err(err).Msg("no feasible layout found")
		return model.CalculationResponse{}, err
	}

	named := SelectScenarios(pool)
	scenarios := make([]model.Scenario, 0, len(named))
	for _, n := range named {
		scenarios = append(scenarios, AssembleScenario(n.Name, n.Solution, inventory.Rails, constraints))
	}

	log.Info().Int("poolSize", len(pool)).Int("scenarioCount", len(scenarios)).Msg("calculate completed")

	return model.CalculationResponse{
		Scenarios: scenarios,
		Tent:      req.Tent,
	}, nil
}
