// Package optional treats pointers as optional values.
//
// - IsNil/IsNotNil: presence checks
// - IsNilOrEmpty/IsNilOrEmptyString/IsNilOrEmptyMap: absent or zero length
// - ToURL: parse an optional string, nil on blank or malformed input
package optional
