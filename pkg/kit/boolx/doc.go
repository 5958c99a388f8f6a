// Package boolx holds bool helpers that read better than an inline if.
package boolx
