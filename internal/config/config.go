package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "strings"

    "gopkg.in/yaml.v3"

    "numinput/internal/numeric"
)

// ErrConfigurationConflict is returned when a field asks for both the stepper
// and the counter affordance. Only one stepping affordance may be shown.
var ErrConfigurationConflict = errors.New("showStepper and showCounter cannot be set at the same time")

// Config is a set of named number fields, e.g.
// {"fields": {"qty": {"min": 0, "max": 5, "decimal": 1, "showCounter": true}}}
type Config struct {
    Fields map[string]Field `json:"fields" yaml:"fields"`
}

// Field mirrors the props of a single number input.
// Pointers distinguish "not configured" from zero.
type Field struct {
    Value       *float64 `json:"value,omitempty" yaml:"value,omitempty"`
    Min         *float64 `json:"min,omitempty" yaml:"min,omitempty"`
    Max         *float64 `json:"max,omitempty" yaml:"max,omitempty"`
    Decimal     int      `json:"decimal,omitempty" yaml:"decimal,omitempty"`
    Step        *float64 `json:"step,omitempty" yaml:"step,omitempty"` // nil: one unit of 10^-decimal
    ShowStepper bool     `json:"showStepper,omitempty" yaml:"showStepper,omitempty"`
    ShowCounter bool     `json:"showCounter,omitempty" yaml:"showCounter,omitempty"`
    Disabled    bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
    ReadOnly    bool     `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`

    // presentation only
    Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
    Width       int    `json:"width,omitempty" yaml:"width,omitempty"`
}

// Validate checks a field without mutating it.
func (f Field) Validate() error {
    if f.ShowStepper && f.ShowCounter {
        return ErrConfigurationConflict
    }
    if f.Decimal < 0 || f.Decimal > numeric.MaxPlaces {
        return fmt.Errorf("decimal must be within 0..%d, got %d", numeric.MaxPlaces, f.Decimal)
    }
    if f.Step != nil && !(*f.Step > 0) {
        return fmt.Errorf("step must be positive, got %v", *f.Step)
    }
    if f.Width < 0 {
        return fmt.Errorf("width must not be negative, got %d", f.Width)
    }
    return nil
}

// Limits converts the numeric part of f for the normalizer.
func (f Field) Limits() (numeric.Limits, error) {
    return numeric.NewLimits(f.Decimal, f.Min, f.Max)
}

// Validate checks every field and reports the first failure with its name.
func Validate(c *Config) error {
    for _, name := range FieldNames(c) {
        if err := c.Fields[name].Validate(); err != nil {
            return fmt.Errorf("field %q: %w", name, err)
        }
    }
    return nil
}

// Load reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func Load(path string) (*Config, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    var c Config
    if isYAML(path) {
        if err := yaml.Unmarshal(data, &c); err != nil {
            return nil, fmt.Errorf("parse config YAML: %w", err)
        }
    } else {
        if err := json.Unmarshal(data, &c); err != nil {
            return nil, fmt.Errorf("parse config JSON: %w", err)
        }
    }
    if len(c.Fields) == 0 {
        return nil, fmt.Errorf("config has no fields")
    }
    if err := Validate(&c); err != nil {
        return nil, err
    }
    return &c, nil
}

func FieldNames(c *Config) []string {
    names := make([]string, 0, len(c.Fields))
    for k := range c.Fields {
        names = append(names, k)
    }
    sort.Strings(names)
    return names
}

// Clone returns a field that shares no pointers with f.
func (f Field) Clone() Field {
    cp := f
    cp.Value = clonePtr(f.Value)
    cp.Min = clonePtr(f.Min)
    cp.Max = clonePtr(f.Max)
    cp.Step = clonePtr(f.Step)
    return cp
}

func Clone(c *Config) *Config {
    out := &Config{Fields: make(map[string]Field, len(c.Fields))}
    for k, v := range c.Fields {
        out.Fields[k] = v.Clone()
    }
    return out
}

func Save(path string, c *Config) error {
    var (
        data []byte
        err  error
    )
    if isYAML(path) {
        data, err = yaml.Marshal(c)
    } else {
        data, err = json.MarshalIndent(c, "", "  ")
    }
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}

// Float is a convenience for building optional numbers in literals.
func Float(f float64) *float64 { return &f }

func clonePtr(p *float64) *float64 {
    if p == nil {
        return nil
    }
    v := *p
    return &v
}

func isYAML(path string) bool {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".yaml", ".yml":
        return true
    }
    return false
}
