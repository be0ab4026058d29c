// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService resolves the version reported by GET /api/version.
// APP_VERSION (cfg.Version) takes precedence; otherwise the version the
// linker injected into the binary is used.
//
// Returns ErrVersionIsNotSpecified when neither source provides one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := cfg.Version, "config"
	if version == "" && build.HasVersion() {
		version, source = build.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("source", source).
		Str("build", build.String()).
		Msg("app version resolved")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
