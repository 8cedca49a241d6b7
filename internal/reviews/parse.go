package reviews

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// findingsSchema accepts either a bare array of finding objects or an object
// wrapping that array under "findings".
const findingsSchema = `{
  "definitions": {
    "finding": {
      "type": "object",
      "properties": {
        "issue_type":    {"type": ["string", "null"]},
        "description":   {"type": ["string", "null"]},
        "line_number":   {"type": ["integer", "string", "null"]},
        "suggested_fix": {"type": ["string", "null"]}
      }
    },
    "findings": {
      "type": "array",
      "items": {"$ref": "#/definitions/finding"}
    }
  },
  "oneOf": [
    {"$ref": "#/definitions/findings"},
    {
      "type": "object",
      "required": ["findings"],
      "properties": {"findings": {"$ref": "#/definitions/findings"}}
    }
  ]
}`

var schemaLoader = gojsonschema.NewStringLoader(findingsSchema)

// ParseFindings interprets raw model text as a findings list. When the text is
// not a conforming JSON document the whole reply is returned verbatim as one
// general finding. The boolean reports whether structured parsing succeeded.
func ParseFindings(raw string) ([]Finding, bool) {
	doc := stripCodeFence(raw)
	if doc == "" {
		return []Finding{GeneralFinding(raw)}, false
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil || !result.Valid() {
		return []Finding{GeneralFinding(raw)}, false
	}

	findings, err := decodeFindings(doc)
	if err != nil {
		return []Finding{GeneralFinding(raw)}, false
	}
	return findings, true
}

func decodeFindings(doc string) ([]Finding, error) {
	findings := []Finding{}
	if strings.HasPrefix(doc, "{") {
		var wrapped struct {
			Findings []Finding `json:"findings"`
		}
		if err := json.Unmarshal([]byte(doc), &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Findings != nil {
			findings = wrapped.Findings
		}
		return findings, nil
	}
	if err := json.Unmarshal([]byte(doc), &findings); err != nil {
		return nil, err
	}
	return findings, nil
}

// stripCodeFence removes a surrounding Markdown fence such as ```json ... ```.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
