// Package service contains the business-logic layer: a generic resource
// service wrapping a repository, plus resource-specific services that add
// capabilities on top of it (exploration for schedules, credential handling
// for users).
package service
