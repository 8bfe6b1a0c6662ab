// Package perf provides the performance and risk analytics engine for a
// personal portfolio tracker. It is a library of pure, stateless financial
// calculation functions operating on exact decimal values.
//
// The core functionalities include:
//   - Time-Weighted Returns: Modified Dietz returns over a period with
//     interior cash flows, and geometric compounding of daily return series
//     into week/month/year-to-date figures.
//   - Money-Weighted Returns: an annualized internal rate of return solved
//     over dated cash flows.
//   - Currency Decomposition: splitting a foreign position's EUR return into
//     its local-price and exchange-rate components.
//   - Risk Metrics: Sharpe, Sortino, drawdowns, and rolling volatility over
//     a daily return series, plus benchmark-relative measures (tracking
//     error, information ratio).
//   - Return Attribution: Brinson-Fachler allocation/selection/interaction
//     effects across segments, and per-position contribution to return.
//   - Cash Sufficiency: pre-trade validation that a buy can be funded from
//     the available cash balance.
//
// All monetary and rate values are decimal.Decimal, never binary floating
// point: rounding is explicit and consistent (2 places for money, 6 for
// prices and percentages, 8 for FX rates). Every function is a deterministic,
// side-effect-free transformation of its inputs, safe to call concurrently.
// The surrounding application supplies the inputs (valuations, cash flows,
// prices) and decides what to do with the results; this package performs no
// I/O of any kind.
package perf
