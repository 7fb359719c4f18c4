// Package types defines the Contact entity, the Store interface, field
// validation, and standard errors for the Rolodex contact system.
package types
