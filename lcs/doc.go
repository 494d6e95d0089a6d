// Package lcs computes a longest common subsequence between two token
// sequences and returns it as an Alignment: a pair of strictly increasing
// index slices into each input.
//
// Tokens only need to support equality. Compute works on comparable types;
// ComputeFunc accepts an explicit equality function for anything else:
//
//	alignment, err := lcs.Compute(fromLines, toLines)
//	if err != nil {
//		return err // lcs.ErrResourceExhausted
//	}
//	for i := 0; i < alignment.Len(); i++ {
//		fmt.Println(alignment.From[i], alignment.To[i])
//	}
//
// The common prefix and suffix are trimmed before the dynamic-programming
// pass, so only the differing middle region costs O(n·m) time and memory.
package lcs
