package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"marketwatch/internal/platform/config"
	perr "marketwatch/internal/platform/errors"

	docs "marketwatch/internal/services/api/docs"
)

// SpecMutator edits the decoded document before it is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator

	// docReader is swapped by tests
	docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
)

// Register queues m for every served document, modules call it from New
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	mutators = append(mutators, m)
}

// Enum overwrites the enum of schema.prop with values from the engine registry
func Enum(schema, prop string, values []string) SpecMutator {
	return func(spec map[string]any) {
		p := lookup(spec, "components", "schemas", schema, "properties", prop)
		if p == nil {
			return
		}
		enum := make([]any, 0, len(values))
		for _, v := range values {
			enum = append(enum, v)
		}
		p["enum"] = enum
	}
}

// shared error answers every operation documents unless it already names the status
var sharedErrors = []struct {
	code    perr.ErrorCode
	example string
}{
	{perr.ErrorCodeValidation, "tab must be one of [command ops feedback risk market]"},
	{perr.ErrorCodeTooManyRequests, "too many requests"},
	{perr.ErrorCodePanic, "panic recovered"},
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		http.Error(w, "spec parse error", http.StatusInternalServerError)
		return
	}

	asOAS3(spec, "/api/v1")
	if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
		if info := lookup(spec, "info"); info != nil {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}
	}

	ensure(spec, "components", "schemas")["ErrorResponse"] = errorSchema
	for _, e := range sharedErrors {
		status := perr.HTTPStatusCode(e.code)
		key := strconv.Itoa(status)
		eachOperation(spec, func(responses map[string]any) {
			if _, ok := responses[key]; !ok {
				responses[key] = errorResponse(http.StatusText(status), status, e.code, e.example)
			}
		})
	}

	mu.RLock()
	for _, m := range mutators {
		m(spec)
	}
	mu.RUnlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}

// asOAS3 pins the version http-swagger renders and adds a server when none is declared
func asOAS3(spec map[string]any, baseURL string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": baseURL}}
	}
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"required":    []any{"status_code", "status"},
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
}

func errorResponse(desc string, status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"code":        int(code),
					"error":       msg,
				},
			},
		},
	}
}

// eachOperation calls fn with the responses map of every operation, creating it if absent
func eachOperation(spec map[string]any, fn func(responses map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			if o, ok := op.(map[string]any); ok {
				fn(ensure(o, "responses"))
			}
		}
	}
}

// lookup walks nested objects, nil when any step is missing
func lookup(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		next, ok := m[k].(map[string]any)
		if !ok {
			return nil
		}
		m = next
	}
	return m
}

// ensure walks nested objects, creating the missing ones
func ensure(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	return m
}
