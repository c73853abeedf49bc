//go:build !debug

package systems

import "log"

// failFastPlacement is true in debug builds
const failFastPlacement = false

// placementFailed logs an unsatisfiable placement and lets the caller skip it this tick
func placementFailed(err error) {
	log.Printf("[spawn] %v, skipping this tick", err)
}
