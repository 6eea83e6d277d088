package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownMethod is returned when a method name is not one of Methods
var ErrUnknownMethod = errors.New("unknown HTTP method")

// Method is one of the HTTP methods reqline can send
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// Methods is the fixed, ordered method set shown in the method picker
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete}

// String returns the wire name of the method
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MethodNames returns the wire names of Methods in order
func MethodNames() []string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = m.String()
	}
	return names
}

// ParseMethod converts a method name (case-insensitive) into a Method
func ParseMethod(s string) (Method, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, m := range Methods {
		if m.String() == name {
			return m, nil
		}
	}
	return MethodGet, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// UnmarshalText lets a Method be decoded from config files and env vars
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText encodes the method by name
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Header is a single request header. Headers are kept as ordered pairs.
type Header struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ParseHeader parses a "Name: value" string
func ParseHeader(s string) (Header, error) {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Header{}, fmt.Errorf("invalid header %q (expected \"Name: value\")", s)
	}
	return Header{Name: name, Value: strings.TrimSpace(value)}, nil
}

// Request is what gets handed to the HTTP collaborator
type Request struct {
	Method  Method
	URL     string
	Headers []Header
	Body    *string // nil means no body
}

// Response is the outcome of a completed HTTP exchange
type Response struct {
	Status   int
	Headers  map[string]string
	Body     []byte
	Duration time.Duration
}
