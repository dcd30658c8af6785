// Package gsc wraps the Google Search Console API behind small domain
// types, hiding the generated client's shapes from the rest of the tool.
package gsc

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	searchconsole "google.golang.org/api/searchconsole/v1"
)

// CredentialsFile is the service account file name looked up next to the
// executable and in the working directory when no explicit path is
// configured.
const CredentialsFile = "service_account_credentials.json"

// Client is a thin wrapper over the Search Console API service.
type Client struct {
	svc *searchconsole.Service
	log *zap.Logger
}

var _ API = (*Client)(nil)

// Options configures client construction.
type Options struct {
	CredentialsPath string // explicit service account JSON path
	ReadOnly        bool   // request the readonly webmasters scope
	Logger          *zap.Logger
}

// NewClient builds an authorized Search Console client. Credentials are
// resolved from opts.CredentialsPath, then the GSC_CREDENTIALS_PATH
// environment variable, then CredentialsFile beside the executable and in
// the working directory.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	credPath, err := resolveCredentials(opts.CredentialsPath)
	if err != nil {
		return nil, err
	}

	scope := searchconsole.WebmastersScope
	if opts.ReadOnly {
		scope = searchconsole.WebmastersReadonlyScope
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	svc, err := searchconsole.NewService(ctx,
		option.WithCredentialsFile(credPath),
		option.WithScopes(scope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create search console service")
	}

	log.Debug("search console client ready",
		zap.String("credentials", credPath),
		zap.Bool("readonly", opts.ReadOnly))

	return &Client{svc: svc, log: log}, nil
}

func resolveCredentials(explicit string) (string, error) {
	var candidates []string
	if explicit != "" {
		candidates = append(candidates, explicit)
	}
	if env := os.Getenv("GSC_CREDENTIALS_PATH"); env != "" {
		candidates = append(candidates, env)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), CredentialsFile))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, CredentialsFile))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Errorf(
		"no credentials file found: set GSC_CREDENTIALS_PATH or place %s beside the binary",
		CredentialsFile)
}

// apiError converts googleapi failures into *APIError and wraps everything
// else with the operation name.
func apiError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{Op: op, Code: gerr.Code, Message: gerr.Message}
	}
	return errors.Wrap(err, op)
}

// parseTimestamp is lenient: the API reports RFC 3339 timestamps, and an
// absent or malformed one comes back as the zero time.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
