// Package cli implements the interactive authgate shell: a small REPL
// over the account API with commands for signing in and out,
// registering, inspecting and editing the profile, and the password
// reset flow. State lives in the session manager; transient feedback
// goes through the notification center.
package cli
