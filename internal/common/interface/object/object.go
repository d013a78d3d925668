// Released under an MIT license. See LICENSE.

// Package object defines the interface for all alc runtime values.
package object

// I (object) is the basic unit of storage in alc.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
