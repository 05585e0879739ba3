package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultCredentialsFile is read when no credentials are configured.
const DefaultCredentialsFile = "secure-credentials.json"

// ErrNoCredentials indicates that neither the environment nor a file held credentials.
var ErrNoCredentials = errors.New("no credentials found")

var serviceAccountKeys = []string{
	"type",
	"project_id",
	"private_key_id",
	"private_key",
	"client_email",
	"client_id",
	"auth_uri",
	"token_uri",
	"auth_provider_x509_cert_url",
	"client_x509_cert_url",
}

// ParseCredentials reads service account credentials given either as JSON
// text or as the path of a JSON file.
func ParseCredentials(s string) ([]byte, error) {
	if json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	raw, err := os.ReadFile(s)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("credentials file %s is not valid JSON", s)
	}
	return raw, nil
}

// LoadCredentials picks service account credentials from fromEnv or the file
// at path. A given path is tried first with fromEnv as fallback; otherwise
// fromEnv wins and DefaultCredentialsFile is the fallback. Missing or
// unexpected keys are logged as warnings.
func LoadCredentials(ctx context.Context, fromEnv, path string) ([]byte, error) {
	log := zerolog.Ctx(ctx)

	readFile := func(p string) []byte {
		if p == "" {
			p = DefaultCredentialsFile
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("unable to read credentials file")
			return nil
		}
		return raw
	}

	var raw []byte
	if path != "" {
		if raw = readFile(path); raw == nil && fromEnv != "" {
			raw = []byte(fromEnv)
		}
	} else if fromEnv != "" {
		raw = []byte(fromEnv)
	} else {
		raw = readFile("")
	}
	if raw == nil {
		return nil, ErrNoCredentials
	}

	missing, unexpected, err := CheckCredentials(raw)
	if err != nil {
		return nil, fmt.Errorf("parse credentials (%d bytes): %w", len(raw), err)
	}
	if len(missing) > 0 {
		log.Warn().Strs("keys", missing).Msg("expected keys not found in credentials")
	}
	if len(unexpected) > 0 {
		log.Warn().Strs("keys", unexpected).Msg("unexpected keys found in credentials")
	}
	return raw, nil
}

// CheckCredentials compares the top-level keys of a service account key with
// the expected set.
func CheckCredentials(raw []byte) (missing, unexpected []string, err error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, err
	}

	expected := make(map[string]bool, len(serviceAccountKeys))
	for _, key := range serviceAccountKeys {
		expected[key] = true
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range fields {
		if !expected[key] {
			unexpected = append(unexpected, key)
		}
	}
	sort.Strings(unexpected)
	return missing, unexpected, nil
}
