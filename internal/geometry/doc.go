// Package geometry holds the numeric helpers behind drag resizing: spreading
// a pan across a row of sibling sizes while respecting a minimum size.
package geometry
