// Package http implements the REST transport of the participant tracker.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, gzip compression, bearer-token
// authentication and the admin role gate.
package http
