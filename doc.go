// Package luadt bridges Go temporal values and the datetime object model
// of an embedded Lua state. Every value kind has a pair of conversions:
// PushX builds the host object on top of the Lua stack from a native
// value, ToX reads the host object at a stack index back into a native
// value. Exports go through the host constructors, so host-side
// normalization and range checking always apply; imports re-validate
// through the native constructors, which stay the authority on calendar
// correctness.
//
// Conversions are pure, synchronous and reentrant. The only shared state
// is a table of host constructor handles cached in the Lua registry of
// each state, resolved once on first use. Leap seconds, which the host
// model cannot represent, are collapsed on export and reported once
// through the host's warn function; a failing warning channel is never
// allowed to fail the conversion.
package luadt
