// Package config loads and validates the monitored topology.
//
// The configuration is a TOML file describing services, the groups they
// contain and the probe nodes within them. Loading happens once at startup
// and is all-or-nothing:
//
//   - the file is read from disk
//   - ${VAR} placeholders are replaced from an explicit Environment
//   - the result is decoded strictly (unknown keys are rejected)
//   - required fields are checked
//   - identifiers are checked for uniqueness within their scope
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("vigil.toml", config.EnvironmentFromOS())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Identifier Scopes
//
// Service ids are unique within the configuration. Group ids and the ids of
// nodes attached directly to a service are unique within that service. The
// ids of nodes inside a group are unique within that group only, so a
// grouped node may reuse the id of a direct node or of a node in a sibling
// group.
//
// A successfully loaded Config is never modified afterwards and may be read
// concurrently.
package config
