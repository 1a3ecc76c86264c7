// Package doctor runs read-only health checks for a project set up with
// svk-setup: required tools on PATH and their versions, the vcpkg checkout,
// the manifest, and the toolchain directive. Output follows the
// "[ OK ] / [MISS] / [WARN] / [FAIL]" convention used across the CLI.
package doctor
