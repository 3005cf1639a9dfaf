// Package service contains the application use cases. It coordinates the
// domain types with the persistence interfaces from internal/store and never
// depends on a concrete store implementation.
//
// Services receive their dependencies through constructor injection. Expected
// conditions are reported with sentinel errors (ErrCourseNotFound); anything
// else is wrapped in a ServiceError carrying the failed operation, which the
// API layer maps to a generic 500.
package service
