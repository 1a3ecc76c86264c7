// Package manifest reads, writes, and validates the vcpkg manifest document
// (vcpkg.json) that declares which packages vcpkg installs for the project.
// Writing always replaces the file; an existing manifest is never merged.
// Validation runs the document against an embedded JSON Schema.
package manifest
