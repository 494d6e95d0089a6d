// Package normdiff compares two line sequences and reports their differences
// in the classical "normal diff" format.
//
// The work is split across sub-packages:
//
//   - lcs: longest common subsequence alignment of two token sequences
//   - hunk: add/delete hunks, normal-format rendering, parsing and applying
//   - source: reading line sequences from any viant/afs location
//   - unified: optional unified-format output
//   - tracing: OpenTelemetry spans around each phase
//
// Most callers use the Service facade exposed by the root package:
//
//	srv := normdiff.New()
//	result, err := srv.Compare(ctx, "old.txt", "new.txt")
//	if err != nil {
//		return err
//	}
//	err = srv.Write(os.Stdout, result)
package normdiff
