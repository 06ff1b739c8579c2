package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/qaz1996001/dicom2nii/internal/config"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/normalize"
	"github.com/qaz1996001/dicom2nii/internal/pool"
	"github.com/qaz1996001/dicom2nii/internal/renameplan"
	"github.com/qaz1996001/dicom2nii/internal/strategy"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "organize":
			runOrganize(os.Args[2:])
			return
		case "classify":
			runClassify(os.Args[2:])
			return
		case "normalize":
			runNormalize(os.Args[2:])
			return
		case "version":
			fmt.Println(version)
			return
		}
	}
	printUsage()
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "dicom2nii: classify DICOM series and normalize converted NIfTI output")
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  dicom2nii organize  --input <dir> --output <dir> [--workers N] [--config file.yaml]")
	fmt.Fprintln(os.Stderr, "  dicom2nii classify  --input <dir> [--workers N] [--config file.yaml]")
	fmt.Fprintln(os.Stderr, "  dicom2nii normalize --input <dir> [--workers N] [--config file.yaml]")
	fmt.Fprintln(os.Stderr, "  dicom2nii version")
}

// runOrganize ingests a flat dump of loose DICOM instances (no pre-existing
// study layout), classifies each, and copies it into the canonical
// "<output>/<PatientID>_<StudyDate>_<Modality>_<AccessionNumber>/<Verdict>/"
// layout. This is the stage that actually constructs study identifiers from
// tags. runClassify below reads a different, pre-existing folder naming
// ("<StudyDate>_<AccessionNumber>_<Modality>_<PatientID>", see
// renameplan.ParseStudyKey) and skips any other folder; runNormalize accepts
// every subdirectory of its input.
func runOrganize(args []string) {
	fs := flag.NewFlagSet("organize", flag.ExitOnError)
	input := fs.String("input", "", "Directory of loose DICOM instances to organize (required)")
	output := fs.String("output", "", "Root directory to write the canonical study layout into (required)")
	workers := fs.Int("workers", 0, "Number of parallel workers, 1-8 (default: workers.count from --config, else 4)")
	configFile := fs.String("config", "", "Load configuration from YAML file")
	fs.Parse(args)

	log := newLogger()

	if *input == "" || *output == "" {
		log.Error("organize: --input and --output are required")
		os.Exit(1)
	}

	cfg := resolveConfig(*configFile, log)

	instances, err := listDicomFiles(*input)
	if err != nil {
		log.WithError(err).Error("organize: list instances")
		os.Exit(1)
	}

	n := pool.Resolve(*workers, cfg.Workers.Count, 1, 8)
	dispatcher := strategy.Default()

	var mu sync.Mutex
	seriesCounts := make(map[string]int)
	var skipped, copied, failed int

	err = pool.Run(len(instances), n, func(i int) error {
		src := instances[i]
		ds, err := dicomdata.Load(src)
		if err != nil {
			log.WithError(err).WithField("instance", src).Warn("organize: unreadable DICOM instance")
			mu.Lock()
			skipped++
			mu.Unlock()
			return nil
		}

		studyID, ok := renameplan.BuildIdentifier(ds)
		if !ok {
			log.WithField("instance", src).Warn("organize: missing study identifier tag, skipping study")
			mu.Lock()
			skipped++
			mu.Unlock()
			return nil
		}

		verdict, family, ok := dispatcher.Classify(ds)
		if !ok {
			log.WithField("instance", src).Debug("organize: unclassified")
			mu.Lock()
			skipped++
			mu.Unlock()
			return nil
		}

		seriesKey := studyID + "/" + string(verdict)
		mu.Lock()
		seriesCounts[seriesKey]++
		instanceNum := seriesCounts[seriesKey]
		mu.Unlock()

		plan := renameplan.Plan{
			Source:      src,
			StudyRoot:   filepath.Join(*output, studyID),
			Verdict:     verdict,
			Family:      family,
			InstanceNum: instanceNum,
		}
		if err := os.MkdirAll(plan.DestDir(), 0o755); err != nil {
			log.WithError(err).WithField("instance", src).Error("organize: create destination directory")
			mu.Lock()
			failed++
			mu.Unlock()
			return nil
		}
		if err := copyFile(src, plan.DestPath()); err != nil {
			log.WithError(err).WithField("instance", src).Error("organize: copy instance")
			mu.Lock()
			failed++
			mu.Unlock()
			return nil
		}
		mu.Lock()
		copied++
		mu.Unlock()
		return nil
	})
	if err != nil {
		log.WithError(err).Error("organize: worker failure")
	}

	log.WithFields(logrus.Fields{"copied": copied, "skipped": skipped, "failed": failed}).Info("organize: done")
	if failed > 0 {
		os.Exit(1)
	}
}

// copyFile copies src to dst, creating dst fresh; a failure here is always
// per-file (§7: "File I/O failure during copy/rename: per-file skipped").
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func runClassify(args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	input := fs.String("input", "", "Root directory of study folders to classify (required)")
	workers := fs.Int("workers", 0, "Number of parallel workers, 1-8 (default: workers.count from --config, else 4)")
	configFile := fs.String("config", "", "Load configuration from YAML file")
	fs.Parse(args)

	log := newLogger()

	if *input == "" {
		log.Error("classify: --input is required")
		os.Exit(1)
	}

	cfg := resolveConfig(*configFile, log)

	studyDirs, err := listStudyDirs(*input)
	if err != nil {
		log.WithError(err).Error("classify: list study directories")
		os.Exit(1)
	}

	n := pool.Resolve(*workers, cfg.Workers.Count, 1, 8)
	dispatcher := strategy.Default()

	var failed, classified int
	for _, studyDir := range studyDirs {
		key, err := renameplan.ParseStudyKey(filepath.Base(studyDir))
		if err != nil {
			log.WithError(err).WithField("study_dir", studyDir).Warn("classify: skip malformed study folder")
			continue
		}
		instances, err := listDicomFiles(studyDir)
		if err != nil {
			log.WithError(err).WithField("study_dir", studyDir).Error("classify: list instances")
			failed++
			continue
		}
		err = pool.Run(len(instances), n, func(i int) error {
			ds, err := dicomdata.Load(instances[i])
			if err != nil {
				return fmt.Errorf("load %s: %w", instances[i], err)
			}
			verdict, family, ok := dispatcher.Classify(ds)
			if !ok {
				log.WithField("instance", instances[i]).Debug("classify: unclassified")
				return nil
			}
			log.WithFields(logrus.Fields{
				"study":    renameplan.FormatStudyKey(key),
				"instance": instances[i],
				"family":   family,
				"verdict":  verdict,
			}).Info("classify: matched")
			classified++
			return nil
		})
		if err != nil {
			log.WithError(err).WithField("study_dir", studyDir).Error("classify: worker failure")
			failed++
		}
	}

	log.WithFields(logrus.Fields{"classified": classified, "failed_studies": failed}).Info("classify: done")
	if failed > 0 {
		os.Exit(1)
	}
}

func runNormalize(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	input := fs.String("input", "", "Root directory of converted study folders to normalize (required)")
	workers := fs.Int("workers", 0, "Number of parallel workers, 1-8 (default: workers.count from --config, else 4)")
	configFile := fs.String("config", "", "Load configuration from YAML file")
	fs.Parse(args)

	log := newLogger()

	if *input == "" {
		log.Error("normalize: --input is required")
		os.Exit(1)
	}

	cfg := resolveConfig(*configFile, log)

	studyDirs, err := listStudyDirs(*input)
	if err != nil {
		log.WithError(err).Error("normalize: list study directories")
		os.Exit(1)
	}

	n := pool.Resolve(*workers, cfg.Workers.Count, 1, 8)
	manager := normalize.Default()
	if err := manager.Run(studyDirs, n, cfg); err != nil {
		log.WithError(err).Error("normalize: failed")
		os.Exit(1)
	}
	log.WithField("studies", len(studyDirs)).Info("normalize: done")
}

func resolveConfig(path string, log *logrus.Entry) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Error("load config")
		os.Exit(1)
	}
	return cfg
}

// newLogger returns a logger scoped to a fresh correlation ID, so every
// line from one invocation can be grepped out of a shared log stream.
func newLogger() *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	runID, err := uuid.NewV4()
	if err != nil {
		return log.WithField("run_id", "unknown")
	}
	return log.WithField("run_id", runID.String())
}

func listStudyDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	return dirs, nil
}

func listDicomFiles(studyDir string) ([]string, error) {
	var files []string
	err := filepath.Walk(studyDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
