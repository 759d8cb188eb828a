// Package bridge implements an incremental bridge-connected-components
// structure, in the style of Westbrook and Tarjan: it tracks, as edges are
// added one at a time, both the ordinary connected components of a graph
// and its 2-edge-connected (bridge-free) components, and reports which
// bridges stop being bridges as each edge is added.
//
// It is the supporting structure for the bottleneck Steiner-distance test,
// which processes an instance's edges in ascending weight order and needs
// to know, each time a cycle closes, exactly which tree edges on that cycle
// just lost their bridge status so it can test whether they are safe to
// buy outright.
package bridge
