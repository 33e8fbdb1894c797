// Package server runs the HTTP API and the gRPC health endpoint side by side
// and stops both on SIGTERM, SIGINT or SIGQUIT.
package server
