// Package platform selects the host-specific pieces of the setup procedure:
// which bootstrap script to run, how to invoke it, and where the bootstrapped
// vcpkg executable lives. The platform is detected once per run; callers can
// also pass an explicit Platform to exercise either branch on any host.
package platform
