// Package setup runs the project bootstrap procedure:
//
//	Start -> Clone? -> Bootstrap -> Declare Manifest -> Inject Toolchain -> Done
//
// Steps run strictly in order on the calling goroutine, and every child
// process is waited on before the next step starts. The first error aborts
// the run; side effects of completed steps stay in place. A non-zero exit
// from the bootstrap script or from `vcpkg install` is only logged unless
// Options.Strict is set.
package setup
