package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_GeneratesSchema(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "devstrap-config.schema.json")

	var stdout, stderr bytes.Buffer

	err := run(&stdout, &stderr, []string{"generate-schema", outPath})
	if err != nil {
		t.Fatalf("generator failed: %v\nstderr:\n%s", err, stderr.String())
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read generated schema: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("unmarshal generated schema: %v", err)
	}

	if got := schema["title"]; got != "devstrap Bootstrap Configuration" {
		t.Errorf("unexpected title %q", got)
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema has no properties object")
	}

	for _, key := range []string{"apiVersion", "kind", "spec"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema is missing property %q", key)
		}
	}

	kind, ok := props["kind"].(map[string]any)
	if !ok {
		t.Fatal("kind property is not an object")
	}

	enum, ok := kind["enum"].([]any)
	if !ok || len(enum) != 1 || enum[0] != "Bootstrap" {
		t.Errorf("unexpected kind enum %v", kind["enum"])
	}
}

func TestRun_DurationFieldsAreStrings(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "schema.json")

	var stdout, stderr bytes.Buffer

	err := run(&stdout, &stderr, []string{"generate-schema", outPath})
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read generated schema: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("unmarshal generated schema: %v", err)
	}

	props := schema["properties"].(map[string]any)
	spec := props["spec"].(map[string]any)
	specProps := spec["properties"].(map[string]any)
	docker := specProps["docker"].(map[string]any)
	dockerProps := docker["properties"].(map[string]any)
	interval := dockerProps["pollInterval"].(map[string]any)

	if interval["type"] != "string" {
		t.Errorf("pollInterval should map to a string schema, got %v", interval["type"])
	}
}
