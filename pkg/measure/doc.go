// Package measure estimates physical dimensions of building elements by
// combining raw geometry with declared properties, with an explicit
// fallback order per element kind.
package measure
