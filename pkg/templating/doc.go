/*
Package templating rewrites marker-delimited regions of a static HTML document
with freshly randomized content.

A region is everything between a start marker and the first end marker that
follows it, usually a pair of HTML comments such as

	<!-- TRENDING_TERMS_START -->...<!-- TRENDING_TERMS_END -->

The markers themselves are never touched, so a document can be run through
the Templater any number of times. Regions whose markers are missing are
skipped and reported rather than failing the run.

Content comes from keyword pools (see package keywords): comma-separated
keyword lists for meta tags and JSON-LD, ticker items with trend
percentages and live metrics, a three-row momentum block and the current
date. Markup fragments are rendered with html/template so pool terms are
always escaped.
*/
package templating
