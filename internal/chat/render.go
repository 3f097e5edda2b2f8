package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-mafia/internal/display"
)

var templateSources = map[Kind]string{
	KindRoleAssignment:        `Your role is {{ .Role }}.`,
	KindPhaseChange:           `{{ .Phase.String | title }}{{ if .Phase.IsDay }}, day {{ .DayNumber }}{{ end }}.`,
	KindWildcardConvertFailed: `You could not become {{ .Role }}. That role is not enabled in this game.`,
	KindFactionRoster:         `Your fellow {{ .Faction }} members are {{ names .Members }}.`,
	KindVigilanteSuicide:      `You could not live with the guilt of killing a fellow townie.`,
	KindMarionettesRemaining:  `You may string up {{ .Count }} more {{ if eq (int .Count) 1 }}marionette{{ else }}marionettes{{ end }}.`,
}

var templates = compileTemplates()

func compileTemplates() map[Kind]*template.Template {
	funcs := sprig.TxtFuncMap()
	funcs["names"] = display.List

	out := make(map[Kind]*template.Template, len(templateSources))
	for k, src := range templateSources {
		out[k] = template.Must(template.New(string(k)).Funcs(funcs).Parse(src))
	}
	return out
}

// Render expands msg into the text shown to its recipient, wrapped to width.
func Render(msg Message, width int) (string, error) {
	tmpl, ok := templates[msg.Kind()]
	if !ok {
		return "", fmt.Errorf("no template for message kind %q", msg.Kind())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return display.Wrap(display.Capitalize(buf.String()), width), nil
}

// Envelope is the wire form of a message sent to a player.
type Envelope struct {
	Kind Kind    `json:"kind"`
	Data Message `json:"data"`
	Text string  `json:"text"`
}

// NewEnvelope renders msg and wraps it for delivery.
func NewEnvelope(msg Message) (*Envelope, error) {
	text, err := Render(msg, display.DefaultWidth)
	if err != nil {
		return nil, err
	}
	return &Envelope{Kind: msg.Kind(), Data: msg, Text: text}, nil
}

func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind Kind            `json:"kind"`
		Data json.RawMessage `json:"data"`
		Text string          `json:"text"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	msg, ok := newMessage(raw.Kind)
	if !ok {
		return fmt.Errorf("unknown message kind %q", raw.Kind)
	}
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, msg); err != nil {
			return fmt.Errorf("unmarshalling %s: %w", raw.Kind, err)
		}
	}

	e.Kind = raw.Kind
	e.Data = reflect.ValueOf(msg).Elem().Interface().(Message)
	e.Text = raw.Text
	return nil
}
