// Package workqueue provides the pluggable ordered work collection: a
// minimal container of pending work items with Offer and Take. Order is
// implementation-chosen — a FIFO is the natural default, but LIFO and
// priority orderings are equally valid since saturation correctness
// never depends on order, only termination and performance do.
//
// Three implementations are provided:
//
//	FIFO     — slice-backed queue, the default.
//	LIFO     — slice-backed stack, depth-first work discipline.
//	Priority — container/heap-backed priority queue driven by a caller
//	           Less function, for callers who want to bias saturation
//	           toward cheaper work first (e.g. shallow intermediate-node
//	           chains before deep ones).
package workqueue
