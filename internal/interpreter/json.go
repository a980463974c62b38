package interpreter

import (
	"encoding/json"
	"fmt"
)

// Encode renders a descriptor as JSON with a "type" discriminant field next
// to the intent-specific fields, the shape consumed across the service
// boundary.
func Encode(cmd Command) ([]byte, error) {
	raw, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("marshal %s descriptor: %w", cmd.Kind(), err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("reshape %s descriptor: %w", cmd.Kind(), err)
	}
	kind, err := json.Marshal(cmd.Kind())
	if err != nil {
		return nil, err
	}
	fields["type"] = kind
	return json.Marshal(fields)
}

// Decode is the inverse of Encode, used by consumers that receive
// descriptors over the wire rather than in-process.
func Decode(data []byte) (Command, error) {
	var envelope struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode descriptor envelope: %w", err)
	}

	var cmd Command
	switch envelope.Type {
	case KindDrawLine:
		cmd = &DrawLine{}
	case KindDrawCircle:
		cmd = &DrawCircle{}
	case KindDrawArc:
		cmd = &DrawArc{}
	case KindDrawRectangle:
		cmd = &DrawRectangle{}
	case KindDrawPolyline:
		cmd = &DrawPolyline{}
	case KindDrawText:
		cmd = &DrawText{}
	case KindDrawHatch:
		cmd = &DrawHatch{}
	case KindDrawWall:
		cmd = &DrawWall{}
	case KindAddDimension:
		cmd = &AddDimension{}
	case KindCreateLayer:
		cmd = &CreateLayer{}
	case KindSave:
		cmd = &Save{}
	case KindUnknown:
		cmd = &Unknown{}
	case KindError:
		cmd = &Error{}
	default:
		return nil, fmt.Errorf("unrecognised descriptor type %q", envelope.Type)
	}

	if err := json.Unmarshal(data, cmd); err != nil {
		return nil, fmt.Errorf("decode %s descriptor: %w", envelope.Type, err)
	}
	return deref(cmd), nil
}

func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *DrawLine:
		return *c
	case *DrawCircle:
		return *c
	case *DrawArc:
		return *c
	case *DrawRectangle:
		return *c
	case *DrawPolyline:
		return *c
	case *DrawText:
		return *c
	case *DrawHatch:
		return *c
	case *DrawWall:
		return *c
	case *AddDimension:
		return *c
	case *CreateLayer:
		return *c
	case *Save:
		return *c
	case *Unknown:
		return *c
	case *Error:
		return *c
	default:
		return cmd
	}
}
