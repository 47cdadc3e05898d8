// Package protocol defines the recorded push format a run script is replayed
// from. It is a local replay format, not a wire protocol.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PushType discriminates recorded pushes.
type PushType string

const (
	PushRunBegin    PushType = "run_begin"
	PushElement     PushType = "element"
	PushWidget      PushType = "widget"
	PushForm        PushType = "form"
	PushRunFinished PushType = "run_finished"
)

// NodePayload is the recorded shape of a display element.
type NodePayload struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind"`
	FragmentID string `json:"fragment_id,omitempty"`
	Text       string `json:"text,omitempty"`
	Level      string `json:"level,omitempty"`
}

// WidgetPayload is the recorded shape of an input element.
type WidgetPayload struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	Default    string `json:"default,omitempty"`
	FormID     string `json:"form_id,omitempty"`
	FragmentID string `json:"fragment_id,omitempty"`
}

// FormPayload declares a form and its submit behavior.
type FormPayload struct {
	ID            string `json:"id"`
	ClearOnSubmit bool   `json:"clear_on_submit"`
}

// Push is one recorded event. Exactly one payload matches the Type.
type Push struct {
	Type   PushType       `json:"type"`
	RunID  string         `json:"run_id,omitempty"`
	Node   *NodePayload   `json:"node,omitempty"`
	Widget *WidgetPayload `json:"widget,omitempty"`
	Form   *FormPayload   `json:"form,omitempty"`
}

// DecodePush parses a single push and checks the payload matches its type.
func DecodePush(data []byte) (Push, error) {
	var p Push
	if err := json.Unmarshal(data, &p); err != nil {
		return Push{}, fmt.Errorf("decode push: %w", err)
	}
	if err := p.validate(); err != nil {
		return Push{}, err
	}
	return p, nil
}

// DecodeRecording parses a JSONL recording, one push per line. Blank lines
// are skipped.
func DecodeRecording(data []byte) ([]Push, error) {
	var out []Push
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		p, err := DecodePush(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (p Push) validate() error {
	switch p.Type {
	case PushRunBegin, PushRunFinished:
		return nil
	case PushElement:
		if p.Node == nil {
			return fmt.Errorf("push %q missing node payload", p.Type)
		}
		if p.Node.Kind == "" {
			return fmt.Errorf("element push missing kind")
		}
		return nil
	case PushWidget:
		if p.Widget == nil {
			return fmt.Errorf("push %q missing widget payload", p.Type)
		}
		if p.Widget.Kind == "" {
			return fmt.Errorf("widget push missing kind")
		}
		return nil
	case PushForm:
		if p.Form == nil || p.Form.ID == "" {
			return fmt.Errorf("form push missing form id")
		}
		return nil
	case "":
		return fmt.Errorf("push missing type")
	default:
		return fmt.Errorf("unknown push type %q", p.Type)
	}
}
