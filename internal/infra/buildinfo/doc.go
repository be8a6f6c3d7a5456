// Package buildinfo provides build information for surveyauth.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/surveyauth-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When Commit is not injected, the VCS revision recorded by the Go
// toolchain is used instead.
package buildinfo
