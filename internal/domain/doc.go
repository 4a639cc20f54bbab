// Package domain contains shared domain types used across entity sub-packages.
// The semester entity and the progress computation live in domain/semester.
// This root package holds sentinel errors and validation types shared by all
// layers.
package domain
