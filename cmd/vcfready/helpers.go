package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/config"
	"github.com/vcfready/vcfready/pkg/readiness"
)

// loadConfig finds .vcfready/config.yaml above the working directory.
func loadConfig() *config.Config {
	wd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfgFile := config.FindConfigFile(wd)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func loadCatalog(cfg *config.Config, override string) (*catalog.Catalog, error) {
	cat, err := catalog.LoadOrDefault(firstNonEmpty(override, cfg.Catalog.Path))
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func newEngine(cfg *config.Config, cat *catalog.Catalog, classifier string) (*readiness.Engine, error) {
	c, err := readiness.ClassifierByName(firstNonEmpty(classifier, cfg.Readiness.Classifier))
	if err != nil {
		return nil, err
	}
	return readiness.NewEngine(readiness.WithClassifier(c), readiness.WithOrder(cat.Order())), nil
}

// resolveLedger returns the ledger file: the explicit --ledger path, or the
// named ledger under the cache directory.
func resolveLedger(path, name string) string {
	p := firstNonEmpty(path, config.LedgerPath(name))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
