package planner

import (
	"fmt"
	"math/rand"
)

// NewAgentName returns a reference agent identity: "UAV-" followed by six
// decimal digits drawn from rng.
func NewAgentName(rng *rand.Rand) string {
	return fmt.Sprintf("UAV-%06d", rng.Intn(1_000_000))
}
