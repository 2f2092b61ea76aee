// Package chase runs a hide-and-seek round on a pathgrid.Grid: the player
// walks and builds or removes walls, and after every player action the enemy
// takes one step along the current shortest path toward the player.
//
// The package holds no presentation state. A terminal or GUI front end reads
// Player, Enemy and Grid after each action and draws them.
//
// Turn order:
//
//  1. The player acts: Move changes facing and steps if the target is
//     reachable; ToggleFacing flips the cell in front of the player.
//  2. StepEnemy searches from the enemy to the player and advances one cell.
//     An unreachable player leaves the enemy where it is.
//  3. The round is over once both stand on the same cell.
//
// Repair modes:
//
// By default a toggle only repairs adjacency incrementally, which can leave a
// freshly opened cell invisible to some of its neighbours until the next
// rebuild.
// WithStrictRepair follows every opening toggle with RebuildAllAdjacency so
// the enemy sees new gaps immediately.
package chase
