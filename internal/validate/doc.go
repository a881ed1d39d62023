// Package validate re-scans a target after installation.
//
// The check is manifest-driven: required entries that are missing become
// errors, optional ones become warnings. Nothing is auto-fixed and
// nothing is rolled back; the report is for the operator. Sub-item
// counts (skills, commands, MCP descriptors) are included for
// visibility only and never fail a check.
package validate
