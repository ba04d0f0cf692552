// Package segment implements the segmented byte storage behind a bit array.
//
// A Store owns an ordered list of byte segments. Every segment except the
// last holds exactly SegmentSize bytes; the last holds the remainder. Taken
// together the segments form one logical byte stream, and bit k of that
// stream is bit k%8 of byte k/8.
//
// # Addressing
//
//	pos  → segment = pos / (SegmentSize*8)
//	       rem     = pos % (SegmentSize*8)
//	       byte    = rem / 8
//	       bit     = rem % 8
//
// Because only the last segment may be short, direct division gives the same
// answer as walking the segments one by one.
//
// # Ownership
//
// Segments are allocated through a mem.Allocator and freed together by
// Release. A Store is not safe for concurrent use.
package segment
