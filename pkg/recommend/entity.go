package recommend

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Literal is a request field rendered into a prompt as the client sent it.
// Strings keep their text, numbers use the shortest decimal form (1500,
// 1499.99), null is empty and any other JSON value keeps its source text.
// Decoding a Literal never fails on the value's type.
type Literal string

func (l *Literal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*l = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Literal(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*l = Literal(data)
			return nil
		}
		*l = Literal(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*l = Literal(buf.String())
	}
	return nil
}

// BuildRequest asks for three build tiers within a budget.
type BuildRequest struct {
	Budget             Literal `json:"budget" swaggertype:"number"`
	UseCase            Literal `json:"useCase" swaggertype:"string"`
	CustomRequirements Literal `json:"customRequirements,omitempty" swaggertype:"string"`
}

// PeripheralRequest asks for peripherals matching an already chosen build.
type PeripheralRequest struct {
	Budget  Literal         `json:"budget" swaggertype:"number"`
	Build   json.RawMessage `json:"build" swaggertype:"object"`
	UseCase Literal         `json:"useCase" swaggertype:"string"`
}

// snapshotParts is the only part of a build snapshot the prompts read.
type snapshotParts struct {
	Components struct {
		CPU struct {
			Model string `json:"model"`
		} `json:"cpu"`
		GPU struct {
			Model string `json:"model"`
		} `json:"gpu"`
	} `json:"components"`
}

// SnapshotModels extracts cpu and gpu model names from an opaque build
// snapshot. Anything that does not fit yields empty strings.
func SnapshotModels(raw json.RawMessage) (cpu, gpu string) {
	if len(raw) == 0 {
		return "", ""
	}
	var s snapshotParts
	if err := json.Unmarshal(raw, &s); err != nil {
		// fall back field by field so one bad component does not hide the other
		var loose struct {
			Components map[string]json.RawMessage `json:"components"`
		}
		if json.Unmarshal(raw, &loose) != nil {
			return "", ""
		}
		return partModel(loose.Components["cpu"]), partModel(loose.Components["gpu"])
	}
	return s.Components.CPU.Model, s.Components.GPU.Model
}

func partModel(raw json.RawMessage) string {
	var p struct {
		Model string `json:"model"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return ""
	}
	return p.Model
}
