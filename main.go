// Copyright
// SPDX-License-Identifier: MIT
// numinput: numeric text fields for the terminal, with fixed-decimal rounding, range clamping and steppers
package main

import (
    "encoding/json"
    "errors"
    "flag"
    "fmt"
    "math"
    "os"
    "path/filepath"
    "strconv"
    "strings"
    "sync"
    "time"

    "numinput/internal/config"
    "numinput/internal/numeric"
    appTUI "numinput/internal/tui"
)

const Version = "0.3.0"

const defaultConfig = "numinput.yaml"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("numinput", Version)
        return
    case "init":
        cmdInit()
    case "demo":
        cmdDemo()
    case "accept":
        cmdAccept()
    case "normalize":
        cmdNormalize()
    case "step":
        cmdStep()
    default:
        usage()
    }
}

func usage() {
    fmt.Print(`numinput ` + Version + `
Numeric text fields for the terminal: typing is filtered to partial numbers, committed values are
rounded to a fixed number of decimals and clamped to [min, max].
USAGE
  numinput <command> [options]
COMMANDS
  init         Write a sample numinput.yaml
  demo         Edit the configured fields in an interactive form and print the committed values
  accept       Check whether texts are acceptable while typing
  normalize    Round and clamp values the way a field commits them
  step         Step a value up or down by the field's increment
  help         Show help (try: numinput help demo)
  version      Print version
NOTES
  • Config files ending in .yaml/.yml are read as YAML, everything else as JSON.
  • Use --log-file on demo to record rejected keystrokes, corrections and blocked steps.
`)
}

func helpTopic(name string) {
    switch name {
    case "demo":
        fmt.Println(`USAGE
  numinput demo [--config PATH] [--log-file PATH] [--no-color] [--json]
DESCRIPTION
  Shows one number field per configured entry. Type to edit, enter or tab commits,
  up/down (or ctrl+k/ctrl+j) step, ctrl+y copies the committed value, ctrl+r reloads
  the config file, ? shows all keys, esc finishes and ctrl+c cancels.
OPTIONS
  --config PATH     Field configuration (default: numinput.yaml; built-in sample if missing)
  --log-file PATH   Append logs to file (created if missing)
  --no-color        Disable colors (NO_COLOR is honored as well)
  --json            Print the committed values as JSON`)
    case "normalize", "step":
        fmt.Println(`USAGE
  numinput normalize [--decimal N] [--min X] [--max Y] VALUE ...
  numinput step [--decimal N] [--min X] [--max Y] [--step S] [--by N] [VALUE]
DESCRIPTION
  normalize prints the canonical text of each VALUE followed by the boundary flags.
  step moves VALUE (empty if omitted) by N increments; negative N steps down.
  A step that starts on the bound it moves towards is refused with exit status 1.`)
    case "accept":
        fmt.Println(`USAGE
  numinput accept TEXT ...
DESCRIPTION
  Prints "ok" or "rejected" for each TEXT. Exit status is 1 if any was rejected.`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func sampleConfig() *config.Config {
    return &config.Config{Fields: map[string]config.Field{
        "price":    {Value: config.Float(9.99), Decimal: 2, Min: config.Float(0), ShowStepper: true, Placeholder: "0.00", Width: 10},
        "quantity": {Value: config.Float(1), Min: config.Float(1), Max: config.Float(10), ShowCounter: true, Width: 6},
        "discount": {Decimal: 1, Min: config.Float(0), Max: config.Float(100), Step: config.Float(5), ShowStepper: true, Placeholder: "%", Width: 8},
    }}
}

func cmdInit() {
    fs := flag.NewFlagSet("init", flag.ExitOnError)
    path := fs.String("config", defaultConfig, "Path of the config file to write")
    _ = fs.Parse(os.Args[2:])

    if _, err := os.Stat(*path); !errors.Is(err, os.ErrNotExist) {
        fmt.Println(*path, "already exists; not overwriting")
        return
    }
    if err := config.Save(*path, sampleConfig()); err != nil {
        fmt.Println("Could not write config:", err)
        os.Exit(1)
    }
    fmt.Println("Wrote", *path)
}

func cmdDemo() {
    fs := flag.NewFlagSet("demo", flag.ExitOnError)
    fs.Usage = func() { helpTopic("demo") }
    path := fs.String("config", defaultConfig, "Field configuration (JSON or YAML)")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    noColor := fs.Bool("no-color", false, "Disable colors")
    asJSON := fs.Bool("json", false, "Print committed values as JSON")
    _ = fs.Parse(os.Args[2:])

    lf, err := openLogFile(*logPath)
    if err != nil {
        fmt.Println("Could not open log file:", err)
    }
    if lf != nil {
        defer lf.Close()
    }
    logf := newLogger(lf)

    c, reload, err := demoConfig(*path)
    if err != nil {
        fmt.Println("Config error:", err)
        os.Exit(1)
    }
    logf("demo: %d field(s): %s", len(c.Fields), strings.Join(config.FieldNames(c), ", "))

    values, err := appTUI.Run(c, appTUI.Options{Reload: reload, Logf: logf, NoColor: *noColor})
    if errors.Is(err, appTUI.ErrCancelled) {
        fmt.Println("Cancelled.")
        return
    }
    if err != nil {
        fmt.Println("TUI error:", err)
        os.Exit(1)
    }
    names := config.FieldNames(c)
    if *asJSON {
        out := make(map[string]any, len(values))
        for _, name := range names {
            if v := values[name]; v.IsEmpty() {
                out[name] = nil
            } else {
                out[name] = json.Number(v.Text)
            }
        }
        b, _ := json.MarshalIndent(out, "", "  ")
        fmt.Println(string(b))
        return
    }
    for _, name := range names {
        fmt.Printf("%s = %s\n", name, values[name])
    }
}

// demoConfig loads path, falling back to the built-in sample when the default
// file does not exist. Reload is only offered for a file on disk.
func demoConfig(path string) (*config.Config, func() (*config.Config, error), error) {
    if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && path == defaultConfig {
        return sampleConfig(), nil, nil
    }
    c, err := config.Load(path)
    if err != nil {
        return nil, nil, err
    }
    return c, func() (*config.Config, error) { return config.Load(path) }, nil
}

func cmdAccept() {
    fs := flag.NewFlagSet("accept", flag.ExitOnError)
    fs.Usage = func() { helpTopic("accept") }
    _ = fs.Parse(os.Args[2:])

    rejected := 0
    for _, text := range fs.Args() {
        verdict := "ok"
        if !numeric.Accept(text) {
            verdict = "rejected"
            rejected++
        }
        fmt.Printf("%-12q %s\n", text, verdict)
    }
    if rejected > 0 {
        os.Exit(1)
    }
}

// optFloat is a float flag that remembers whether it was set.
type optFloat struct{ v *float64 }

func (o *optFloat) String() string {
    if o.v == nil {
        return ""
    }
    return strconv.FormatFloat(*o.v, 'g', -1, 64)
}

func (o *optFloat) Set(s string) error {
    f, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return fmt.Errorf("not a number: %q", s)
    }
    o.v = &f
    return nil
}

// fieldFlags registers the numeric field options shared by normalize and step.
func fieldFlags(fs *flag.FlagSet) func() (config.Field, error) {
    places := fs.Int("decimal", 0, "Number of decimal places (0..18)")
    var lo, hi, step optFloat
    fs.Var(&lo, "min", "Lower bound (optional)")
    fs.Var(&hi, "max", "Upper bound (optional)")
    fs.Var(&step, "step", "Increment (default: one unit of the last decimal place)")
    return func() (config.Field, error) {
        f := config.Field{Decimal: *places, Min: lo.v, Max: hi.v, Step: step.v}
        return f, f.Validate()
    }
}

func cmdNormalize() {
    fs := flag.NewFlagSet("normalize", flag.ExitOnError)
    fs.Usage = func() { helpTopic("normalize") }
    field := fieldFlags(fs)
    _ = fs.Parse(os.Args[2:])

    f, err := field()
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    l, err := f.Limits()
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    failed := false
    for _, arg := range fs.Args() {
        v, err := numeric.Normalize(numeric.Simplify(arg), l)
        if err != nil {
            fmt.Printf("%s: %v\n", arg, err)
            failed = true
            continue
        }
        fmt.Println(describe(v))
    }
    if failed {
        os.Exit(1)
    }
}

func cmdStep() {
    fs := flag.NewFlagSet("step", flag.ExitOnError)
    fs.Usage = func() { helpTopic("step") }
    field := fieldFlags(fs)
    by := fs.Int64("by", 1, "Number of increments (negative steps down)")
    _ = fs.Parse(os.Args[2:])

    f, err := field()
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    l, err := f.Limits()
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    units, err := numeric.StepUnits(f.Step, f.Decimal)
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    current := ""
    if fs.NArg() > 0 {
        current = numeric.Simplify(fs.Arg(0))
    }
    total, err := stepTotal(units, *by)
    if err != nil {
        fmt.Println("Invalid options:", err)
        os.Exit(2)
    }
    v, err := numeric.Step(current, l, total)
    if errors.Is(err, numeric.ErrStepDisabled) {
        fmt.Println(describe(v), "(step disabled)")
        os.Exit(1)
    }
    if err != nil {
        fmt.Println("Step failed:", err)
        os.Exit(1)
    }
    fmt.Println(describe(v))
}

// stepTotal multiplies the per-step units by the step count, refusing
// products that do not fit int64.
func stepTotal(units, count int64) (int64, error) {
    total := units * count
    if units != 0 && (total/units != count || (units == -1 && count == math.MinInt64)) {
        return 0, fmt.Errorf("--by %d: %w", count, numeric.ErrOverflow)
    }
    return total, nil
}

func describe(v numeric.Value) string {
    var flags []string
    if v.AtLower {
        flags = append(flags, "at-min")
    }
    if v.AtUpper {
        flags = append(flags, "at-max")
    }
    if len(flags) == 0 {
        return v.String()
    }
    return v.String() + " [" + strings.Join(flags, ",") + "]"
}

/* ---------- logging ---------- */

var logFileMu sync.Mutex

func openLogFile(path string) (*os.File, error) {
    if path == "" {
        return nil, nil
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
    if err != nil {
        return nil, err
    }
    _, _ = fmt.Fprintf(f, "=== numinput %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, nil
}

// newLogger returns a printf-style logger writing to f. Without a file the
// logger discards everything so the terminal UI stays clean.
func newLogger(f *os.File) func(format string, args ...any) {
    if f == nil {
        return func(string, ...any) {}
    }
    return func(format string, args ...any) {
        logFileMu.Lock()
        defer logFileMu.Unlock()
        _, _ = fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
    }
}
