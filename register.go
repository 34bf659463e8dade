package main

import (
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/career"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/event"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/resdir"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/skills"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/training"
	"github.com/rs/zerolog/log"
)

func registerAll() {
	// Register all custom components from each package
	career.Register()
	training.Register()
	event.Register()
	skills.Register()

	// Register resource path cache (uses a resource sink, not a custom
	// action/recognition)
	resdir.Register()

	log.Info().
		Msg("All custom components and sinks registered successfully")
}
