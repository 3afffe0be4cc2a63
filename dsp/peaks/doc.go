// Package peaks locates local maxima in integer sequences.
//
// [Find] runs three phases: candidate detection above a height threshold,
// strongest-first suppression of peaks closer than a minimum distance, and a
// final count cap that keeps the earliest survivors. Plateaus are reported
// at their first index.
//
// Suppression starts from a virtual peak at index -1, so nothing closer than
// minDistance to the start of the sequence survives.
//
// Candidate detection records at most [MaxCandidates] maxima per call.
// Further maxima in a long sequence are dropped before distance pruning runs,
// so a caller that needs more than that must split the sequence.
package peaks
