//go:build !cgo
// +build !cgo

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/appengine-ltd/cadtalk/internal/config"
)

func newRenderer(config.Config, *zap.Logger) (renderer, error) {
	return nil, errors.New("rendering requires the cgo build (raylib canvas backend)")
}
