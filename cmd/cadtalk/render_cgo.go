//go:build cgo
// +build cgo

package main

import (
	"go.uber.org/zap"

	"github.com/appengine-ltd/cadtalk/internal/config"
	"github.com/appengine-ltd/cadtalk/internal/executor"
	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

type canvasRenderer struct {
	ex *executor.Executor
}

func newRenderer(cfg config.Config, logger *zap.Logger) (renderer, error) {
	ex := executor.New(executor.Options{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Scale:      cfg.Canvas.Scale,
		Margin:     cfg.Canvas.Margin,
		Background: cfg.Canvas.Background,
		LineWeight: cfg.Canvas.LineWeight,
	}, logger)
	return &canvasRenderer{ex: ex}, nil
}

func (r *canvasRenderer) Apply(cmd interpreter.Command) (string, bool) {
	res := r.ex.Apply(cmd)
	if res.Message != "" {
		return res.Message, res.OK
	}
	return res.EntityID, res.OK
}

func (r *canvasRenderer) Close() {
	r.ex.Close()
}
