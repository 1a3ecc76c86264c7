// Package cli defines the Cobra command tree for svk-setup. Running the root
// command with no subcommand performs the setup procedure in the current
// directory; subcommands cover version info, user settings, and health
// checks. Commands only parse flags and format output; the work happens in
// the setup, doctor, and config packages.
package cli
