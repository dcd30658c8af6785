package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chris-regnier/gscctl/internal/gsc"
)

func TestPropertiesList(t *testing.T) {
	setupTestEnv(t, &stubAPI{
		props: []gsc.Property{
			{SiteURL: "https://example.com/", PermissionLevel: "siteOwner"},
		},
	})

	var buf bytes.Buffer
	propertiesCmd.SetOut(&buf)
	if err := propertiesCmd.RunE(propertiesCmd, nil); err != nil {
		t.Fatalf("properties: %v", err)
	}

	if !strings.Contains(buf.String(), "https://example.com/ (siteOwner)") {
		t.Errorf("expected property line, got:\n%s", buf.String())
	}
}

func TestPropertiesDetails(t *testing.T) {
	setupTestEnv(t, &stubAPI{
		props: []gsc.Property{
			{SiteURL: "sc-domain:example.org", PermissionLevel: "siteFullUser"},
		},
	})

	var buf bytes.Buffer
	propertiesCmd.SetOut(&buf)
	if err := propertiesCmd.RunE(propertiesCmd, []string{"sc-domain:example.org"}); err != nil {
		t.Fatalf("properties details: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "sc-domain:example.org") || !strings.Contains(got, "siteFullUser") {
		t.Errorf("expected site details, got:\n%s", got)
	}
}

func TestPropertiesJSON(t *testing.T) {
	setupTestEnv(t, &stubAPI{
		props: []gsc.Property{
			{SiteURL: "https://example.com/", PermissionLevel: "siteOwner"},
		},
	})
	jsonOutput = true

	var buf bytes.Buffer
	propertiesCmd.SetOut(&buf)
	if err := propertiesCmd.RunE(propertiesCmd, nil); err != nil {
		t.Fatalf("properties --json: %v", err)
	}

	if !strings.Contains(buf.String(), `"SiteURL": "https://example.com/"`) {
		t.Errorf("expected JSON output, got:\n%s", buf.String())
	}
}
