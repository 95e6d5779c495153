//go:build tools

// Package tools lists the development tools used with this module.
// They are installed with `go install` or run through `go run` and are not tracked in go.mod.
package tools

// Air reloads the server on template and Go changes in dev mode (DEV=true).
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
//
// mockgen regenerates internal/mocks from the backend API ports.
//   Run: go generate ./internal/mocks
//   Docs: https://github.com/uber-go/mock
