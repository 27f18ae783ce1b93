// Package pdsgraph is the indexed storage for a pushdown-system
// saturation graph: nodes, single-action edges, and the
// untargeted-dynamic-pop associations attached to a node.
//
// Graph keeps one index per direction the saturation engine actually
// consults, so every lookup in the table below runs in O(1) amortized
// plus O(k) for the k matches returned, never a scan of the full edge set:
//
//	find_push_edges_by_target              byTargetPush
//	find_nop_edges_by_source               bySourceNop
//	find_pop_edges_by_source               bySourcePop
//	find_targeted_dynamic_pop_edges_by_source  bySourceDynPop
//
// AddEdge and AddUntargetedDynamicPopAction are idempotent.
//
// Graph is safe for concurrent readers and a single concurrent writer,
// mirroring the split-lock discipline of lvlath's core.Graph, even
// though the engine itself is single-threaded — this guards
// introspection (dot dumps, size queries) run from another goroutine
// while a long saturation is paused between closure steps.
package pdsgraph
