// Package config resolves the dandelion configuration.
//
// A fixed catalog of options (see [Catalog]) is resolved into an immutable
// [Configuration]. For every option the value is taken from the first source
// that has it, in the following priority order (earlier sources win):
//  1. System properties (process-wide, see [SystemProperties])
//  2. Init parameters supplied by the embedding web layer
//  3. User properties supplied by the caller
//
// When no source has a value, the default of the active profile is used.
// Profiles other than "dev" and "prod" have no defaults of their own and
// borrow every default from "dev".
//
// The main entry points are [New] for explicit sources and [FromProcess] for
// the process-wide system properties and profile signal.
package config
