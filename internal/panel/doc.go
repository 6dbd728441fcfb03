// Package panel models a tiling workspace as a tree of splits and leaves.
//
// The tree is stored as a flat map from id to node with children referenced
// by id, plus a back-reference from every child to its single parent. All
// operations (split, remove, resize) return a new tree and leave the
// receiver untouched, so a renderer holding an older tree never sees a
// half-applied change.
package panel
