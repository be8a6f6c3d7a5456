// Package domain defines the core value types of SurveyAuth.
//
// Domain types are pure values without IO dependencies or framework
// coupling. This package contains:
//
//   - Token: the {identity, salt, shortened hash} value and its
//     canonical string form
//   - Identity parsing for adapters that receive identities as text
//   - Errors: the error catalogue shared by every layer
package domain
