// SPDX-License-Identifier: MIT

// Package crowd builds a consensus tour from many independent expert tours
// ("wisdom of crowds").
//
// Aggregate runs four stages over the crowd:
//
//  1. Statistics: size, minimum, maximum and mean expert distance.
//  2. Mode detection: experts are sorted by distance (stable) and the first
//     longest run of equal distances is the legitimate subset. With
//     Options.Tolerance > 0 a run groups distances within Tolerance of the
//     run's first element.
//  3. Positional voting: in round r (1 ≤ r ≤ N-1) every legitimate tour
//     votes for its city at position r. Tours that disagree with the most
//     frequent vote (smallest city index on ties) drop out. Voting stops once
//     a single legitimate tour remains.
//  4. Assembly: the last legitimate tour in sorted order is canonicalized
//     and its distance recomputed. That is the consensus tour.
//
// Confidence is reported as DistanceAgreement (mode run size ÷ crowd size)
// and PathAgreement (survivors ÷ mode run size).
package crowd
