// Package signals inspects a target project for classification input.
//
// The detector is strictly read-only and never fails: git queries that
// error out degrade to a zero commit count, and missing marker files are
// simply absent signals. This keeps detection safe to run against any
// directory, including ones that are not repositories at all.
package signals
