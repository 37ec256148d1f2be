// Package smooth provides the numerical primitives consumed by the STL
// decomposition engine: a locally weighted regression (loess) smoother and a
// small set of descriptive statistics.
//
// The loess implementation performs degree-1 (local linear) regression over a
// symmetric nearest-neighbor window with tricube distance weights, optional
// external per-point weights, and an internal bisquare reweighting loop for
// robustness against outliers. The per-window fits are computed with
// gonum's weighted linear regression.
//
// The package is self-contained; it has no knowledge of STL. Any conforming
// implementation of the stl.Smoother interface may be substituted for it.
package smooth
