/*
Package particles implements the decorative particle field drawn behind the
landing page: a fixed set of slowly drifting points that bounce off the edges
of the drawing surface and are joined by faint lines when they come close.

The package is independent of any graphics library. A Field advances and
renders itself against the small Surface interface; cmd/particles provides
an ebiten implementation.

Link computation checks every unordered pair of particles, so a frame costs
O(n²). At the stock counts (50 or 60 particles, 1225 or 1770 pairs) that is
negligible, but it is the path to watch if the count grows.
*/
package particles
