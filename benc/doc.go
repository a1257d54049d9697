// Package benc decodes and encodes the bencode wire format.
//
// # Usage
//
//	// Decode a stream
//	node, err := benc.Decode(r)
//
//	// Encode canonically (dictionary keys in sorted order)
//	err := benc.Encode(w, node)
//
//	// File round trip
//	node, err := benc.Load("a.torrent")
//	err = benc.Save("a.torrent", node)
//
// # Related Packages
//
//   - github.com/manokara/bencedit/ir - decoded value trees
package benc
