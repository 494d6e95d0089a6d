// Package idgen wraps the UUID generator so that comparison identifiers can
// be stubbed in tests. Callers should treat identifiers as opaque strings.
package idgen
