// Package slicex provides bounds-checked access to slices.
package slicex
