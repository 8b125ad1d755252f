package handlers

import (
	"os"

	"github.com/reqpilot/reqpilot/internal/mirror"
	"github.com/reqpilot/reqpilot/internal/services"
)

var (
	Domain = os.Getenv("DOMAIN")

	mirrorLog *mirror.Log
	intake    *services.IntakeService
)

// Init wires the mirror log and the intake service built on it. Called once
// from main before the router starts, and from tests.
func Init(log *mirror.Log) {
	mirrorLog = log
	intake = services.NewIntakeService(log)
}
