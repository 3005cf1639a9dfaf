// Package api adapts HTTP to the course use cases. Each handler parses and
// validates its input into a typed request before calling a service, and
// translates errors into status codes in one place (HandleAPIError), so no
// internal detail reaches a response body.
package api
