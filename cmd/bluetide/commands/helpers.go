package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired      = errors.New("no token configured: run 'bluetide login' or set DIGITALOCEAN_TOKEN")
	ErrVolumeIDRequired   = errors.New("volume id is required")
	ErrVolumeNameRequired = errors.New("volume name is required")
	ErrDropletIDRequired  = errors.New("droplet id is required")
	ErrDomainNameRequired = errors.New("domain name is required")
	ErrRecordDataRequired = errors.New("record type, name, and data are required")
	ErrKeyNameRequired    = errors.New("key name and public key are required")
	ErrTagNameRequired    = errors.New("tag name is required")
	ErrSizeRequired       = errors.New("size in gigabytes must be positive")
)

// CreateClient builds an API client from the resolved configuration.
func CreateClient() (*ocean.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	opts := []ocean.Option{}
	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		opts = append(opts, ocean.WithEndpoint(endpoint))
	}

	if viper.GetBool("verbose") {
		opts = append(opts, ocean.WithLogger(stderrLogger{}), ocean.WithDebug(true))
	}

	client, err := ocean.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// stderrLogger writes debug output to stderr so it never mixes with
// table/json/yaml output on stdout.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

// renderStructured writes value as JSON or YAML to stdout, reporting whether
// the configured output format was one of the two.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

// renderTable writes one table to stdout with the given header and rows.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toInterfaces(header)...)

	for _, row := range rows {
		_ = table.Append(toInterfaces(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// printAction reports a freshly started asynchronous action.
func printAction(action ocean.Action) error {
	if done, err := renderStructured(action); done {
		return err
	}

	fmt.Printf("Action %d (%s) is %s\n", action.ID, action.Type, action.Status)

	return nil
}
