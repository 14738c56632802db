/*
Package keywords holds the curated keyword pools used by the content templater.

Three disjoint pools are provided out of the box (job-market, education and
miscellaneous terms). They can be replaced at build time by a small
SQLite-backed catalog, which lets editors curate terms without touching code.
The catalog is only ever read during a templater run.
*/
package keywords
