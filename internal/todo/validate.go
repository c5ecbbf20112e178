package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed pydo.schema.json
var embeddedSchema []byte

// embeddedSchemaURL is the $id of the embedded schema. It is never fetched.
const embeddedSchemaURL = "https://github.com/nibzard/pydo/pydo.schema.json"

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the embedded schema with a file on disk.
	SchemaPath string
	// SkipSchema disables JSON Schema validation and runs only the minimal checks.
	SkipSchema bool
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}
}

func (r *ValidationResult) fail(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// ValidateFile validates the raw contents of the document at path.
// Keys the Document type would drop on decode are still checked.
func ValidateFile(path string, opts ValidationOptions) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	return ValidateBytes(data, opts), nil
}

// ValidateBytes validates a raw JSON document. Schema errors carry the
// path of the offending value; counters are only compared once the
// document also decodes.
func ValidateBytes(data []byte, opts ValidationOptions) *ValidationResult {
	result := newValidationResult()

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("parse todo file: %w", err)})
		return result
	}

	if !opts.SkipSchema {
		if validateWithSchema(raw, opts.SchemaPath, result) {
			var d Document
			if err := json.Unmarshal(data, &d); err == nil {
				d.checkCounters(result)
			}
			return result
		}
		result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("parse todo file: %w", err)})
		return result
	}
	d.validateMinimal(result)
	return result
}

// Validate validates the document as Save would write it, before counters
// are recomputed.
func (d *Document) Validate(opts ValidationOptions) *ValidationResult {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		result := newValidationResult()
		result.fail(&ValidationError{Err: fmt.Errorf("marshal todo file: %w", err)})
		return result
	}
	return ValidateBytes(buf.Bytes(), opts)
}

// validateMinimal performs minimal validation without JSON Schema.
func (d *Document) validateMinimal(result *ValidationResult) {
	if d.Tasks == nil {
		result.fail(&ValidationError{Path: "tasks", Err: errors.New("missing required field")})
	}
	if d.RememberItems == nil {
		result.fail(&ValidationError{Path: "remember-items", Err: errors.New("missing required field")})
	}
	if d.CompletedTasks < 0 {
		result.fail(&ValidationError{
			Path: "completed-tasks",
			Err:  fmt.Errorf("must be >= 0, got %d", d.CompletedTasks),
		})
	}
	if d.UnfinishedTasks < 0 {
		result.fail(&ValidationError{
			Path: "unfinished-tasks",
			Err:  fmt.Errorf("must be >= 0, got %d", d.UnfinishedTasks),
		})
	}
	d.checkCounters(result)
}

// checkCounters warns when the stored counters disagree with the task list.
func (d *Document) checkCounters(result *ValidationResult) {
	if !d.CountersDrifted() {
		return
	}
	completed, unfinished := d.Counts()
	result.Warnings = append(result.Warnings, fmt.Sprintf(
		"counters out of sync: completed-tasks=%d unfinished-tasks=%d, list has %d completed and %d unfinished (fixed on next write)",
		d.CompletedTasks, d.UnfinishedTasks, completed, unfinished,
	))
}

// validateWithSchema validates raw against the schema and reports whether a
// schema could be compiled.
func validateWithSchema(raw interface{}, schemaPath string, result *ValidationResult) bool {
	schema, err := compileSchema(schemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return false
	}
	result.UsedSchema = true

	if err := schema.Validate(raw); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return true
}

func compileSchema(schemaPath string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if schemaPath == "" {
		if err := compiler.AddResource(embeddedSchemaURL, bytes.NewReader(embeddedSchema)); err != nil {
			return nil, fmt.Errorf("invalid embedded schema: %v", err)
		}
		return compiler.Compile(embeddedSchemaURL)
	}

	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", absPath)
		}
		return nil, fmt.Errorf("failed to read schema file: %v", err)
	}
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file: %v", err)
	}
	return schema, nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/tasks/0/completed" into "tasks[0].completed".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
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
