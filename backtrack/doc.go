// Package backtrack runs the backward phase of the reindeer maze solver: it
// recovers every state lying on ANY minimum-cost path, not just one.
//
// The walk starts from every End heading whose recorded cost equals the
// global minimum and follows inverse transitions whose cost deltas match
// exactly:
//
//   - forward predecessor (r−dr, c−dc, h): cost + MoveCost == C
//   - state that turned left into h, i.e. (r, c, TurnLeft.Inverse()(h)):
//     cost + TurnCost == C
//   - state that turned right into h, i.e. (r, c, TurnRight.Inverse()(h)):
//     cost + TurnCost == C
//
// Turn inverses come from gridgraph.Turn.Inverse, a two-entry table; the
// predecessor of a left turn is found with a right rotation and vice versa.
//
// A work list replaces recursion, so grid size never threatens the stack.
// Processing order does not matter: the output is a set.
//
// Complexity: O(S) time and memory, S = 4·R·C.
package backtrack
