package hostfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/paths"
	"github.com/renato0307/muxdeck/internal/ports"
)

// fileVersion is written to exported files
const fileVersion = 1

// YAMLFile implements ports.HostFile with gopkg.in/yaml.v3
type YAMLFile struct{}

// Verify interface compliance at compile time
var _ ports.HostFile = (*YAMLFile)(nil)

// NewYAMLFile creates a YAML host file reader/writer
func NewYAMLFile() *YAMLFile {
	return &YAMLFile{}
}

type document struct {
	Version int         `yaml:"version"`
	Hosts   []hostEntry `yaml:"hosts"`
}

// hostEntry leaves enabled as a pointer so a missing key means enabled
type hostEntry struct {
	Name     string `yaml:"name,omitempty"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Enabled  *bool  `yaml:"enabled,omitempty"`
}

// Read parses a host file. Entries are normalized; a missing hostname is an error.
func (f *YAMLFile) Read(path string) ([]domain.HostInput, error) {
	data, err := os.ReadFile(paths.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read host file: %w", err)
	}
	return decode(data)
}

// Write exports hosts. Ids and colors are not written; they belong to the backend.
func (f *YAMLFile) Write(path string, hosts []domain.Host) error {
	data, err := encode(hosts)
	if err != nil {
		return err
	}

	path = paths.ExpandPath(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write host file: %w", err)
	}
	return nil
}

func decode(data []byte) ([]domain.HostInput, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.HostInput{}, nil
		}
		return nil, fmt.Errorf("failed to parse host file: %w", err)
	}
	if doc.Version > fileVersion {
		return nil, fmt.Errorf("unsupported host file version %d", doc.Version)
	}

	inputs := make([]domain.HostInput, 0, len(doc.Hosts))
	for i, h := range doc.Hosts {
		hostname := strings.TrimSpace(h.Hostname)
		if hostname == "" {
			return nil, fmt.Errorf("host %d: hostname is required", i+1)
		}
		if h.Port < 0 || h.Port > 65535 {
			return nil, fmt.Errorf("host %s: invalid port %d", hostname, h.Port)
		}
		enabled := true
		if h.Enabled != nil {
			enabled = *h.Enabled
		}
		inputs = append(inputs, domain.HostInput{
			Enabled:  enabled,
			Hostname: hostname,
			Name:     strings.TrimSpace(h.Name),
			Port:     h.Port,
			Username: strings.TrimSpace(h.Username),
		}.Normalize())
	}
	return inputs, nil
}

func encode(hosts []domain.Host) ([]byte, error) {
	doc := document{Version: fileVersion, Hosts: make([]hostEntry, 0, len(hosts))}
	for _, h := range hosts {
		enabled := h.Enabled
		doc.Hosts = append(doc.Hosts, hostEntry{
			Enabled:  &enabled,
			Hostname: h.Hostname,
			Name:     h.Name,
			Port:     h.Port,
			Username: h.Username,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode host file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode host file: %w", err)
	}
	return buf.Bytes(), nil
}
