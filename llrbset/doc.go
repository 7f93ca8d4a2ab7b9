// Package llrbset provides a set implementation backed by a left-leaning
// red-black tree, keeping its elements in sorted order.
package llrbset
