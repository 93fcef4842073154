package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "ganttfmt.schema.json"

// configSchema describes the keys accepted in a config file.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "ganttfmt config",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "width_mode": {
      "type": "string",
      "enum": ["runes", "display"]
    },
    "keywords": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[A-Za-z][A-Za-z0-9_-]*$"
      },
      "uniqueItems": true
    },
    "log_level": {
      "type": "string",
      "enum": ["debug", "info", "warn", "warning", "error", "fatal"]
    },
    "log_format": {
      "type": "string",
      "enum": ["text", "json", "logfmt"]
    }
  }
}`

// ValidationError is a single schema violation in a config file.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every violation found in one document.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// validateDocument checks a decoded TOML document against the config schema.
func validateDocument(doc map[string]interface{}) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	// Round trip through JSON so the validator sees JSON value types.
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	err = schema.Validate(value)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var errs ValidationErrors
	collectSchemaErrors(&errs, ve)
	return errs
}

func collectSchemaErrors(errs *ValidationErrors, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath turns "/keywords/0" into "keywords[0]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
