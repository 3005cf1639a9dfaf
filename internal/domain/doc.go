// Package domain contains the core business entities of the course API:
// courses, users with their roles, and enrollments. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
