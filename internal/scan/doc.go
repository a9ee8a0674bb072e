// Package scan runs live working-tree scans by shelling out to git.
//
// A scan classifies every reported path as a tracked change, an untracked
// file, a fully-untracked directory marker, or an ignored path, and
// optionally collects branch metadata. The record package persists scan
// results; the derive package projects them onto coarser reporting modes.
package scan
