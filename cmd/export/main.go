package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"resume-page/internal/bootstrap"
	"resume-page/internal/page"
	"resume-page/internal/shared/config"
	"resume-page/internal/shared/telemetry"
	"resume-page/resume/render"
)

const staticDir = "static"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := telemetry.Setup(cfg.Env); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	err = newRootCmd(cfg).Execute()
	telemetry.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		outDir  string
		dataDir string
		key     string
	)
	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Render the résumé page into a static directory",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataDir != "" {
				cfg.LocalDataDir = dataDir
			}
			if key != "" {
				cfg.ResumeKey = key
			}
			written, err := exportPage(cmd.Context(), cfg, outDir)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "./out", "output directory")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "override LOCAL_DATA_DIR")
	cmd.Flags().StringVar(&key, "key", "", "override RESUME_KEY")
	return cmd
}

// exportPage renders one page view and writes index.html with its assets.
// Nothing is written unless the page rendered and passed validation.
func exportPage(ctx context.Context, cfg config.Config, outDir string) ([]string, error) {
	app, err := bootstrap.Build(cfg)
	if err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(render.Options{
		AccordionExclusive: app.Config.AccordionExclusive,
		AssetBase:          staticDir,
	})
	view, err := page.NewService(app.Loader, renderer).Render(ctx)
	if err != nil {
		return nil, err
	}
	if view.State() != render.StateRendered {
		return nil, view.Err()
	}

	var buf bytes.Buffer
	if err := view.WriteHTML(&buf); err != nil {
		return nil, err
	}
	if err := validateHTML(buf.String()); err != nil {
		return nil, errors.Wrap(err, "render validation failed")
	}

	files := map[string]io.Reader{"index.html": &buf}
	assets := render.Assets()
	for _, name := range []string{"app.js", "styles.css"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return nil, errors.Wrapf(err, "read asset %s", name)
		}
		files[filepath.Join(staticDir, name)] = bytes.NewReader(data)
	}
	return writeOutputs(outDir, files)
}

func writeOutputs(outDir string, files map[string]io.Reader) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(outDir, staticDir), 0o755); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, name := range []string{"index.html", filepath.Join(staticDir, "app.js"), filepath.Join(staticDir, "styles.css")} {
		path := filepath.Join(outDir, name)
		if err := atomic.WriteFile(path, files[name]); err != nil {
			return written, errors.Wrapf(err, "write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}

// validateHTML checks that every section made it into the page and that no
// template token leaked into the output.
func validateHTML(page string) error {
	for _, id := range render.SectionIDs {
		if strings.Count(page, `id="`+id+`"`) != 1 {
			return errors.Errorf("section %q missing or duplicated", id)
		}
	}
	if pos := tokenIndex(page); pos != -1 {
		return errors.Errorf("unresolved template tokens near: %s", snippetAround(page, pos, 200))
	}
	return nil
}

func tokenIndex(text string) int {
	return strings.Index(text, "{{")
}

func snippetAround(text string, pos, maxLen int) string {
	start := pos - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
