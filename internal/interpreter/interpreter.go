// Package interpreter converts freeform drafting commands (Chinese, English
// or mixed) into typed command descriptors. Classification is keyword- and
// pattern-based and fully deterministic: the same input always yields a
// structurally identical descriptor.
package interpreter

import (
	"go.uber.org/zap"
)

// SaveDefaults supplies the output path used by the save builder when a
// command names no explicit file path.
type SaveDefaults struct {
	Directory string
	Filename  string
}

// Interpreter is the sole entry point of the command core. It holds only
// immutable configuration, so one instance is safe for concurrent use.
type Interpreter struct {
	defaults SaveDefaults
	log      *zap.Logger
}

func New(defaults SaveDefaults, logger *zap.Logger) *Interpreter {
	if defaults.Directory == "" {
		defaults.Directory = "output"
	}
	if defaults.Filename == "" {
		defaults.Filename = "drawing.png"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{defaults: defaults, log: logger}
}

// Interpret normalises the raw command, classifies it and dispatches to the
// matching parameter builder. It never returns a nil Command and never
// panics: unclassifiable text yields Unknown, a classified command missing
// its structural minimum of data yields Error, and everything else is
// defaulted into a fully-populated descriptor.
func (i *Interpreter) Interpret(raw string) Command {
	command := normaliseCommand(raw)
	intent := classify(command)
	i.log.Debug("classified command",
		zap.String("command", command),
		zap.String("intent", string(intent)))

	var result Command
	switch intent {
	case KindDrawLine:
		result = buildDrawLine(command)
	case KindDrawCircle:
		result = buildDrawCircle(command)
	case KindDrawArc:
		result = buildDrawArc(command)
	case KindDrawRectangle:
		result = buildDrawRectangle(command)
	case KindDrawPolyline:
		result = buildDrawPolyline(command)
	case KindDrawText:
		result = buildDrawText(command)
	case KindDrawHatch:
		result = buildDrawHatch(command)
	case KindDrawWall:
		result = buildDrawWall(command)
	case KindAddDimension:
		result = buildAddDimension(command)
	case KindCreateLayer:
		result = buildCreateLayer(command)
	case KindSave:
		result = buildSave(command, i.defaults)
	default:
		result = Unknown{OriginalCommand: raw}
	}

	if err, ok := result.(Error); ok {
		i.log.Warn("command missing structural minimum",
			zap.String("command", command),
			zap.String("message", err.Message))
	}
	return result
}
