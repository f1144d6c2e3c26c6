// Package stepgrid computes step-bounded movement on a 2D grid of passable
// and blocked cells, the way turn-based tactics games move units.
//
// What:
//
//   - Grid stores fixed dimensions plus two row-major height buffers: a
//     baseline with the configured passability and a working copy that
//     each query resets and floods.
//   - Finder.FindPath floods a distance field outward from the target, then
//     walks downhill from the start to produce a shortest path of at most
//     maxSteps hops (start and target inclusive).
//   - Finder.FindAll floods outward from the start and lists every cell
//     reachable in at most maxSteps hops, in discovery order.
//   - Grid.Regions and Grid.Connected report 4-connected passable regions.
//   - Grid.Dump renders both buffers as ASCII for debugging.
//
// Movement is 4-directional with unit cost. Neighbors are expanded in the
// fixed order left, right, y+1, y-1, which determines output order.
//
// Heights:
//
//   - Blocked (-1):   impassable.
//   - MaxHeight (1000): passable, not reached by the current query.
//   - [0, MaxHeight):  FindPath stores hops to the target; FindAll stores
//     remaining budget (larger is closer to the start).
//
// Errors:
//
//	Queries never fail. Out-of-range coordinates, non-positive budgets and
//	unreachable targets all produce zero cells. A zero Grid behaves as a
//	0×0 map.
//
// Complexity:
//
//   - Reset:        O(W×H).
//   - FindPath:     O(W×H×B) worst case, typically O(cells within B hops).
//   - FindAll:      O(W×H×B) worst case, B = maxSteps.
//   - Regions:      O(W×H).
//
// Both floods and the path walk run on an explicit stack that replays the
// recursive descent order, so call-stack depth is never a limit.
//
// Concurrency:
//
//	A Grid and the Finder over it serve one query at a time. Use one Finder
//	per goroutine, or serialize access externally.
package stepgrid
