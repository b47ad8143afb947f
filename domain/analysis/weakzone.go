package analysis

import (
	"tunnelstats/domain/table"
)

// SelectWeakZoneColumns returns every column whose name classifies as a
// velocity series, preserving column order. Low readings in these series
// indicate geotechnically weaker ground; the selection is purely
// name-driven so a real anomaly detector (e.g. an SPC threshold) can slot
// in behind the same interface later.
func SelectWeakZoneColumns(rules table.Rules, columns []string) []string {
	return rules.Select(table.RoleVelocity, columns)
}

// SelectMachineColumns returns the boring-machine parameter columns
// (penetration, torque, thrust, revolution under the default rules) in
// column order, for downstream profile charting against chainage.
func SelectMachineColumns(rules table.Rules, columns []string) []string {
	return rules.Select(table.RoleMachine, columns)
}
