// Package command is the wire boundary of the surface system.
//
// A host submits named operations with byte-encoded arguments: scalars as
// decimal strings, structured values (paths, paints, stroke styles, blend
// modes) as JSON documents, and images as encoded bytes. The Dispatcher
// decodes every argument before touching any surface, so a malformed
// command never leaves partial state behind, then routes the typed call
// through the surface registry.
package command
