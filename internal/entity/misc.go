package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeLamp reads the circuit-enable condition a lamp can be wired to,
// plus the boolean use_colors flag.
func decodeLamp(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}
	cond, err := fields.ReadConditionWithLogistics(r, c.Idx)
	if err != nil {
		return nil, err
	}
	useColors, err := r.Bool()
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{}
	if conns != nil {
		out["connections"] = conns
	}
	cb := map[string]interface{}{}
	if cond != nil {
		cb["circuit_condition"] = cond
	}
	if useColors {
		cb["use_colors"] = true
	}
	if len(cb) > 0 {
		out["control_behavior"] = cb
	}
	return out, nil
}

// programmableSpeakerAlertModeTable maps the wire's alert-on-circuit-signal
// mode byte.
var programmableSpeakerAlertModeTable = []string{"pulse", "hold"}

// decodeProgrammableSpeaker reads the speaker's circuit hookup, volume, and
// alert settings.
func decodeProgrammableSpeaker(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}
	signal, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	mode, err := stream.MappedU8(r, programmableSpeakerAlertModeTable)
	if err != nil {
		return nil, err
	}
	showAlert, err := r.Bool()
	if err != nil {
		return nil, err
	}
	alertMessage, err := r.String()
	if err != nil {
		return nil, err
	}
	volume, err := r.F64()
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"parameters": map[string]interface{}{"playback_volume": volume}}
	if conns != nil {
		out["connections"] = conns
	}
	cb := map[string]interface{}{"circuit_parameters": map[string]interface{}{
		"signal_value_is_pitch": mode == "hold",
	}}
	if signal != nil {
		cb["circuit_condition"] = map[string]interface{}{"first_signal": signal}
	}
	if showAlert {
		cb["alert_parameters"] = map[string]interface{}{
			"show_alert":   true,
			"alert_message": alertMessage,
		}
	}
	out["control_behavior"] = cb
	return out, nil
}
