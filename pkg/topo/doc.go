// Package topo reconstructs logical adjacency between spaces from spatial
// proximity: doors are associated with the spaces they touch, the result is
// frozen into an undirected graph, and reachability from corridors to
// stairs is answered by breadth-first traversal.
package topo
