// Package view builds the dashboard's render state.
//
// It has two halves: pure view-model builders (BuildOverview,
// BuildStatistics, BuildDeviceDetail) that map registry and journal
// snapshots to render structs, and a Router that resolves navigation
// routes to screens through a small state machine. The view-models are
// toolkit-agnostic; the HTTP layer serialises them as JSON.
package view
