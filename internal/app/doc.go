// Package app wires configuration, logging and the shift engine into the
// bigshift command: a single shift, the concurrent benchmark or the HTTP
// service, selected by flags.
package app
