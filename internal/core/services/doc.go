// Package services implements the driving ports on top of the driven ones.
//
// DirectoryService answers facet, filter and summary queries over a
// RecordStore. ViewEngine turns a ViewState into a Snapshot, computing its
// parts concurrently with errgroup.
package services
