// Package dashboard turns sparse per-account balance observations into a
// gap-free daily panel, and answers the queries a portfolio dashboard needs.
//
// The pipeline flows one way:
//   - Observation Store: raw balance and account records are parsed and validated
//     ([NewStore]); a malformed date or balance is a fatal [ParseError].
//   - Resampler: each account's observations are averaged per day, reindexed to a
//     daily calendar and linearly interpolated between observations ([Resample]).
//   - Type Joiner: daily balances are inner-joined with the account types
//     ([Join]); accounts without a type are dropped and reported.
//   - Queries: the resulting immutable [Panel] is filtered by date windows
//     ([Window]), aggregated ([TotalsByDate], [TotalsByType], [LatestSnapshot])
//     and broken down by category and account on a selected date ([Compose]).
//
// [Dashboard] bundles these queries for the presentation layers: the `renderer`
// package (markdown), the `server` package (JSON over HTTP) and the `dash` command.
package dashboard
