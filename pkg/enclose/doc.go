// Package enclose decides fire-compartment enclosure: whether stair
// flights, individually and grouped per staircase, have bounding walls on
// all four lateral sides.
package enclose
