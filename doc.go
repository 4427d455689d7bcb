// Package assetprofile derives a normalized financial profile for a single
// tradable asset.
//
// The core functionalities include:
//   - Asset Information: an immutable record of the raw fields reported by a
//     market-data provider, where every field may be missing.
//   - Currency Normalization: resolving an exchange rate between the asset's
//     currency and the user's currency, and converting every monetary figure.
//   - Metrics Derivation: a declarative table of quantitative metrics
//     (prices, balance-sheet aggregates, ratios) evaluated uniformly, plus a
//     qualitative description of the asset.
//   - Chart Axis Policy: a total mapping from the nine lookback periods to the
//     tick granularity and label format of the price chart.
//
// Market data is obtained through the Provider interface, implemented by the
// yahoo and eodhd sub-packages. Rendering lives in the renderer and chart
// sub-packages, and the fap command wires everything in an interactive
// session.
package assetprofile
