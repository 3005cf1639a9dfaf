// Package mocks provides shared function-field mocks for the service and
// store interfaces, for use from any package's tests.
//
// Each mock calls its XxxFn field when set and otherwise returns the plain
// default fields, so simple cases need no closures:
//
//	jwt := &mocks.MockJWTService{
//	    Claims: &auth.Claims{UserID: id, Role: domain.RoleManager},
//	}
//
// When adding a new mock, name the file after the interface it implements
// and assert the interface with a blank var.
package mocks
