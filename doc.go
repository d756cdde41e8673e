// Package tnetstr implements the "typed netstring" serialization format:
// length-prefixed, self-delimiting frames carrying strings, integers, floats,
// booleans, null, ordered lists and ordered dicts, with no schema.
//
//	5:hello,                 the string "hello"
//	5:12345#                 the integer 12345
//	19:5:12345#4:true!1:0#]  a list mixing integers and a bool
//
// Wire format: <length>":"<payload><tag> where length is the decimal byte
// count of the payload (padded zeros forbidden) and tag is one of
// , # ^ ! ~ } ] (string, integer, float, bool, null, dict, list). List and
// dict payloads are flat concatenations of complete frames with no
// separators; dict entries alternate key, value, in wire order, and keys may
// repeat.
//
// Components:
//   - Model[V]: capability seam that maps wire tags to/from a host value
//     representation. The engine never touches a concrete value itself.
//   - Coder[V]: the engine. Pop reads one frame off the front of a buffer,
//     Decode requires exactly one frame, Encode renders one.
//   - native: Model over plain Go values, with package-level
//     Marshal/Unmarshal/Pop for the common case.
//
// A Coder holds no state between calls, so concurrent use on independent
// inputs needs no locking.
package tnetstr
