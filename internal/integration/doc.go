// Package integration runs the site against real postgres and redis containers.
//
//	go test -tags integration_test ./internal/integration/...
package integration
