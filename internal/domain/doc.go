// Package domain contains the core model for hatchery: records, the named
// collection that owns them, and the breeding and training rules.
//
// The domain is persistence-agnostic: it knows the one-line text form of a
// record but never touches the filesystem. Infra adapters map files into and
// out of these types.
package domain
