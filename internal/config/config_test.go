package config

import (
    "errors"
    "os"
    "path/filepath"
    "strings"
    "testing"
)

func TestValidateConflict(t *testing.T) {
    f := Field{ShowStepper: true, ShowCounter: true}
    if err := f.Validate(); !errors.Is(err, ErrConfigurationConflict) {
        t.Fatalf("expected ErrConfigurationConflict, got %v", err)
    }
    c := &Config{Fields: map[string]Field{"qty": f}}
    err := Validate(c)
    if !errors.Is(err, ErrConfigurationConflict) {
        t.Fatalf("expected wrapped ErrConfigurationConflict, got %v", err)
    }
    if !strings.Contains(err.Error(), `"qty"`) {
        t.Fatalf("expected field name in error: %v", err)
    }
}

func TestValidateRanges(t *testing.T) {
    cases := []Field{
        {Decimal: -1},
        {Decimal: 19},
        {Step: Float(0)},
        {Step: Float(-2)},
        {Width: -1},
    }
    for _, f := range cases {
        if err := f.Validate(); err == nil {
            t.Fatalf("expected error for %+v", f)
        }
    }
    ok := Field{Decimal: 2, Min: Float(0), Max: Float(5), Step: Float(0.5), ShowCounter: true}
    if err := ok.Validate(); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
}

func TestLoadJSONAndYAML(t *testing.T) {
    dir := t.TempDir()
    jsonPath := filepath.Join(dir, "fields.json")
    yamlPath := filepath.Join(dir, "fields.yaml")
    if err := os.WriteFile(jsonPath, []byte(`{"fields":{"qty":{"min":0,"max":5,"decimal":1,"showCounter":true}}}`), 0644); err != nil {
        t.Fatal(err)
    }
    yml := "fields:\n  price:\n    value: 1.005\n    decimal: 2\n    showStepper: true\n"
    if err := os.WriteFile(yamlPath, []byte(yml), 0644); err != nil {
        t.Fatal(err)
    }

    c, err := Load(jsonPath)
    if err != nil {
        t.Fatalf("load json: %v", err)
    }
    q := c.Fields["qty"]
    if q.Min == nil || *q.Min != 0 || q.Max == nil || *q.Max != 5 || q.Decimal != 1 || !q.ShowCounter {
        t.Fatalf("unexpected qty field: %+v", q)
    }

    c, err = Load(yamlPath)
    if err != nil {
        t.Fatalf("load yaml: %v", err)
    }
    p := c.Fields["price"]
    if p.Value == nil || *p.Value != 1.005 || p.Decimal != 2 || !p.ShowStepper {
        t.Fatalf("unexpected price field: %+v", p)
    }
}

func TestLoadRejectsConflictAndEmpty(t *testing.T) {
    dir := t.TempDir()
    bad := filepath.Join(dir, "bad.json")
    _ = os.WriteFile(bad, []byte(`{"fields":{"x":{"showStepper":true,"showCounter":true}}}`), 0644)
    if _, err := Load(bad); !errors.Is(err, ErrConfigurationConflict) {
        t.Fatalf("expected conflict, got %v", err)
    }
    empty := filepath.Join(dir, "empty.yml")
    _ = os.WriteFile(empty, []byte("fields: {}\n"), 0644)
    if _, err := Load(empty); err == nil {
        t.Fatalf("expected error for empty config")
    }
}

func TestSaveRoundTripAndClone(t *testing.T) {
    c := &Config{Fields: map[string]Field{
        "b": {Min: Float(1), Decimal: 2},
        "a": {Value: Float(3), ShowStepper: true},
    }}
    path := filepath.Join(t.TempDir(), "out.yml")
    if err := Save(path, c); err != nil {
        t.Fatalf("save: %v", err)
    }
    back, err := Load(path)
    if err != nil {
        t.Fatalf("reload: %v", err)
    }
    if names := FieldNames(back); len(names) != 2 || names[0] != "a" || names[1] != "b" {
        t.Fatalf("unexpected names: %v", names)
    }

    cp := Clone(c)
    *cp.Fields["b"].Min = 99
    if *c.Fields["b"].Min != 1 {
        t.Fatalf("clone shares Min pointer")
    }
}

func TestFieldLimits(t *testing.T) {
    l, err := Field{Decimal: 3}.Limits()
    if err != nil {
        t.Fatalf("limits: %v", err)
    }
    if l.Places() != 3 {
        t.Fatalf("expected 3 places, got %d", l.Places())
    }
}
