// Package numeric provides the numeric routines the recall package is
// built on:
//
//   - [LogSumExp] evaluates signed sums of exponentials in log domain
//     without cancellation error.
//
//   - [LeastSquares] fits parameters by box-constrained
//     Levenberg–Marquardt on a vector residual, with derivatives from
//     numerical central differences.
//
//   - [Brent] finds a root of a continuous scalar function inside a
//     sign-changing bracket.
//
// All routines are pure and safe for concurrent use.
package numeric
