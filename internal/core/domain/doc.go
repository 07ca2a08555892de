// Package domain holds the relief directory's records and the pure rules
// over them.
//
// Organization is one dataset entry. Selection and DetailState make up a
// ViewState, which only changes through Reduce. Facets, FilterResult and
// Summary are computed from the records and never stored.
//
// Nothing here imports another internal package or a third-party module.
package domain
