//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// smallCatalog has one FAQ per category so category switches are easy to see
const smallCatalog = `[
  {"id": 1, "category": "Repairs", "question": "Can you shorten sleeves?",
   "answer": "Sleeves are shortened from the shoulder or the cuff depending on the jacket.",
   "tags": ["sleeves", "alterations"], "helpful": 12},
  {"id": 2, "category": "Orders", "question": "Return policy?",
   "answer": "Unaltered items can be returned within 30 days.",
   "tags": ["returns", "refund"], "helpful": 50},
  {"id": 3, "category": "Orders", "question": "Refund status",
   "answer": "Refunds reach the original payment method within a week.",
   "tags": ["refund", "payment"], "helpful": 9}
]`

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a catalog file into the workspace and returns its path
func (tf *TUITestFramework) WriteCatalog(name, contents string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}
	return path, nil
}

// WriteConfig writes $XDG_CONFIG_HOME/faqdesk/config.toml inside the workspace
func (tf *TUITestFramework) WriteConfig(contents string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	dir := filepath.Join(tf.workspace, "faqdesk")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// startWithCatalog is the common prologue: workspace, small catalog, app running and ready
func startWithCatalog(tf *TUITestFramework) (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	path, err := tf.WriteCatalog("faqs.json", smallCatalog)
	if err != nil {
		return "", err
	}
	if err := tf.StartApp("--catalog", path); err != nil {
		return "", err
	}
	return path, nil
}
