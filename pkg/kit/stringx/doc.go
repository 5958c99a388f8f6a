// Package stringx contains blank checks for strings and optional strings.
package stringx
