// Package domain contains the core model for the Pixels canvas client.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, YAML parsing, or the filesystem. Infra/adapters map into/from
// these types.
package domain
