// Package config loads and validates the runtime configuration shared by the
// classification and normalization pipelines: worker bounds, file-size
// thresholds, and a tag-exclusion list (see DefaultExcludedTags).
package config

import (
	"fmt"
	"os"

	"github.com/qaz1996001/dicom2nii/internal/dicomerr"
	"gopkg.in/yaml.v3"
)

// CharOffset is subtracted from a disambiguating suffix letter's code point
// to recover its numeric ordinal (a -> 2, b -> 3, ...).
const CharOffset = 95

// File-size deletion thresholds, in bytes, for the post-conversion
// normalizers. A normalized file at or below its family's threshold is
// treated as an empty/corrupt conversion artifact and removed.
const (
	SmallFileSizeLimit  = 100 * 1024
	MediumFileSizeLimit = 550 * 1024
	LargeFileSizeLimit  = 800 * 1024
)

const (
	defaultWorkerCount = 4
	minWorkerCount     = 1
	maxWorkerCount     = 8
)

// Config is the top-level, YAML-serializable runtime configuration.
type Config struct {
	Workers      WorkersYAML      `yaml:"workers"`
	FileSizeLimits FileSizeLimitsYAML `yaml:"file_size_limits"`
	ExcludedTags []string         `yaml:"excluded_tags"`
}

// WorkersYAML configures the bounded worker pool shared by classification
// and normalization.
type WorkersYAML struct {
	Count int `yaml:"count"`
}

// FileSizeLimitsYAML overrides the built-in normalizer deletion thresholds.
type FileSizeLimitsYAML struct {
	Small  int64 `yaml:"small_bytes"`
	Medium int64 `yaml:"medium_bytes"`
	Large  int64 `yaml:"large_bytes"`
}

// Default returns the built-in configuration: 4 workers and the default
// file-size thresholds and excluded-tag list.
func Default() Config {
	return Config{
		Workers: WorkersYAML{Count: defaultWorkerCount},
		FileSizeLimits: FileSizeLimitsYAML{
			Small:  SmallFileSizeLimit,
			Medium: MediumFileSizeLimit,
			Large:  LargeFileSizeLimit,
		},
		ExcludedTags: DefaultExcludedTags(),
	}
}

// Load reads and validates a YAML configuration file, filling in defaults
// for anything the file doesn't set.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.ExcludedTags) == 0 {
		cfg.ExcludedTags = DefaultExcludedTags()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg back out as YAML; no subcommand of the CLI calls it.
func Save(path string, cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

// Validate bounds-checks the worker count.
func (c Config) Validate() error {
	if c.Workers.Count < minWorkerCount || c.Workers.Count > maxWorkerCount {
		return fmt.Errorf("%w: %d (must be between %d and %d)", dicomerr.ErrWorkerCount, c.Workers.Count, minWorkerCount, maxWorkerCount)
	}
	return nil
}

// DefaultExcludedTags is the default set of DICOM tag keys (formatted
// "GGGG,EEEE") carried in Config.ExcludedTags, taken from the original
// processing pipeline's exclusion list. No stage of this module writes a
// per-instance metadata dump, and nothing in it reads the list.
func DefaultExcludedTags() []string {
	return []string{
		"0008,0018", // SOPInstanceUID
		"0008,0050", // AccessionNumber
		"0008,0080", // InstitutionName
		"0008,0081", // InstitutionAddress
		"0008,0090", // ReferringPhysicianName
		"0008,1010", // StationName
		"0008,1030", // StudyDescription
		"0008,1040", // InstitutionalDepartmentName
		"0008,1048", // PhysiciansOfRecord
		"0008,1050", // PerformingPhysicianName
		"0008,1070", // OperatorsName
		"0010,0010", // PatientName
		"0010,0020", // PatientID
		"0010,0030", // PatientBirthDate
		"0010,0040", // PatientSex
		"0010,1000", // OtherPatientIDs
		"0010,1001", // OtherPatientNames
		"0010,1010", // PatientAge
		"0010,1020", // PatientSize
		"0010,1030", // PatientWeight
		"0010,2160", // EthnicGroup
		"0010,4000", // PatientComments
		"0020,000D", // StudyInstanceUID
		"0020,000E", // SeriesInstanceUID
		"0020,0010", // StudyID
		"0032,1032", // RequestingPhysician
		"0032,1060", // RequestedProcedureDescription
		"0040,0275", // RequestAttributesSequence
		"0040,1001", // RequestedProcedureID
		"4008,0114", // ImpressionsText
	}
}
