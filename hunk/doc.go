// Package hunk turns an lcs.Alignment into add/delete hunks and renders them
// in the classical "normal" diff format:
//
//	2d1
//	< two
//	3a3
//	> four
//
// A deletion header is "<range in from>d<line in to>" and an addition header
// is "<line in from>a<range in to>". A hunk that both deletes and adds is
// written as a deletion block followed by an addition block; "c" (change)
// blocks are never produced.
//
// Parse and Apply read the format back and replay it against the "from"
// lines, which makes the emitted stream checkable end to end.
package hunk
