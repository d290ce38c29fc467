package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OriginalDomain != DefaultOriginalDomain {
		t.Errorf("OriginalDomain = %q, want %q", cfg.OriginalDomain, DefaultOriginalDomain)
	}
	if cfg.NewDomain != DefaultNewDomain {
		t.Errorf("NewDomain = %q, want %q", cfg.NewDomain, DefaultNewDomain)
	}
	if cfg.MappingReportPath != DefaultMappingReportPath {
		t.Errorf("MappingReportPath = %q, want %q", cfg.MappingReportPath, DefaultMappingReportPath)
	}
	if cfg.URLReportPath != DefaultURLReportPath {
		t.Errorf("URLReportPath = %q, want %q", cfg.URLReportPath, DefaultURLReportPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing input", func(c *Config) { c.InputPath = "" }, true},
		{"missing output", func(c *Config) { c.OutputPath = "" }, true},
		{"missing original domain", func(c *Config) { c.OriginalDomain = "" }, true},
		{"missing new domain", func(c *Config) { c.NewDomain = "" }, true},
		{"missing mapping report path", func(c *Config) { c.MappingReportPath = "" }, true},
		{"missing url report path", func(c *Config) { c.URLReportPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.InputPath = "in.txt"
			cfg.OutputPath = "out.txt"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) || cfgErr.Type != ValidationError {
					t.Errorf("Validate() error = %v, want *ConfigError with VALIDATION_ERROR", err)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != FileNotFound {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != InvalidJSON {
		t.Errorf("Load() error = %v, want INVALID_JSON", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"inputPath":"in.txt","outputPath":"out.txt"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OriginalDomain != DefaultOriginalDomain {
		t.Errorf("OriginalDomain = %q, want default", cfg.OriginalDomain)
	}
	if cfg.InputPath != "in.txt" || cfg.OutputPath != "out.txt" {
		t.Errorf("paths not loaded: %+v", cfg)
	}
}

// genDomain generates plausible non-empty hostname-ish strings.
func genDomain() gopter.Gen {
	return gen.AlphaString().SuchThat(func(s string) bool {
		return len(s) > 0
	}).Map(func(s string) string {
		return s + ".example.com"
	})
}

func genConfig() gopter.Gen {
	nonEmpty := gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 })
	return gopter.CombineGens(
		nonEmpty,    // InputPath
		nonEmpty,    // OutputPath
		genDomain(), // OriginalDomain
		genDomain(), // NewDomain
		nonEmpty,    // MappingReportPath
		nonEmpty,    // URLReportPath
	).Map(func(vals []interface{}) *Config {
		return &Config{
			InputPath:         vals[0].(string),
			OutputPath:        vals[1].(string),
			OriginalDomain:    vals[2].(string),
			NewDomain:         vals[3].(string),
			MappingReportPath: vals[4].(string),
			URLReportPath:     vals[5].(string),
		}
	})
}

func TestConfigRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Config round-trip preserves data", prop.ForAll(
		func(cfg *Config) bool {
			tmpFile := filepath.Join(t.TempDir(), "config.json")

			if err := Save(cfg, tmpFile); err != nil {
				t.Logf("Save failed: %v", err)
				return false
			}

			loaded, err := Load(tmpFile)
			if err != nil {
				t.Logf("Load failed: %v", err)
				return false
			}

			return reflect.DeepEqual(cfg, loaded)
		},
		genConfig(),
	))

	properties.TestingRun(t)
}

func TestParseFlagsPositional(t *testing.T) {
	cfg, err := ParseFlags([]string{"in.txt", "out.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.InputPath != "in.txt" || cfg.OutputPath != "out.txt" {
		t.Errorf("paths = %q, %q", cfg.InputPath, cfg.OutputPath)
	}
	if cfg.OriginalDomain != DefaultOriginalDomain {
		t.Errorf("OriginalDomain = %q, want default", cfg.OriginalDomain)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"--original-domain", "old.example.com",
		"--new-domain", "new.example.com",
		"--mapping-report", "m.txt",
		"--url-report", "u.txt",
		"--verbose",
		"in.txt", "out.txt",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.OriginalDomain != "old.example.com" || cfg.NewDomain != "new.example.com" {
		t.Errorf("domains = %q, %q", cfg.OriginalDomain, cfg.NewDomain)
	}
	if cfg.MappingReportPath != "m.txt" || cfg.URLReportPath != "u.txt" {
		t.Errorf("report paths = %q, %q", cfg.MappingReportPath, cfg.URLReportPath)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestParseFlagsArity(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"one positional", []string{"in.txt"}},
		{"three positionals", []string{"a", "b", "c"}},
		{"no arguments at all", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args, io.Discard); err == nil {
				t.Error("ParseFlags() succeeded, want error")
			}
		})
	}
}

func TestParseFlagsConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"inputPath":"in.txt","outputPath":"out.txt","originalDomain":"file.example.com"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{
		"--config", path,
		"--original-domain", "flag.example.com",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	// Flags beat the config file; paths come from the file.
	if cfg.OriginalDomain != "flag.example.com" {
		t.Errorf("OriginalDomain = %q, want flag.example.com", cfg.OriginalDomain)
	}
	if cfg.InputPath != "in.txt" || cfg.OutputPath != "out.txt" {
		t.Errorf("paths = %q, %q", cfg.InputPath, cfg.OutputPath)
	}
}
