// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the metadata injected into a binary with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
// Values the linker did not set read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linker variables.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.version != "" && a.version != unknownBuildValue
}

// String formats the metadata as "version (date, commit)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildValue
	}
	return value
}
