// Package llrb implements an ordered key/value map backed by a
// left-leaning red-black (LLRB) binary search tree.
//
// It provides a self-balancing binary search tree with O(log n) insertion,
// deletion, and lookup, plus O(log n) successor/predecessor/ceiling/floor
// queries. Unlike a classical red-black tree, an LLRB tree never leans a
// red link to the right and never stacks two red links in a row, which
// collapses insertion and deletion to a handful of shared primitives
// (rotateLeft, rotateRight, flipColors, balance, moveRedLeft, moveRedRight).
// Not thread-safe.
//
// Reference: Robert Sedgewick, "Left-leaning Red-Black Trees" (2008).
package llrb
