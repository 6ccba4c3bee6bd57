// Package stats serves public blood-donation statistics by proxying the
// WHO Global Health Observatory indicator for Greece, with a static
// fallback payload when the upstream is unreachable.
package stats
