// Package config resolves the pipeline's variable table against a base data
// directory and publishes the result as an immutable snapshot.
//
// The base directory is either given explicitly or auto-detected by locating
// a keyword segment in the working directory. Relative fragments from
// internal/cfgvars are joined onto it with host-correct separators; plain
// constants pass through unchanged. Initialization happens once per Resolver
// and is idempotent unless forced; readers access the published snapshot
// without locking.
//
// An optional TOML overrides file can adjust fragments and constants before
// resolution. Inspection helpers (Describe, VerifyPaths) exist for operators
// debugging a deployment's directory layout.
package config
