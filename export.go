package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/content"
)

var (
	exportOut     string
	exportExclude []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site into a static directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, store, err := setup()
		if err != nil {
			return err
		}
		render, err := newRenderer(cfg, store)
		if err != nil {
			return err
		}
		n, err := exportSite(render, cfg, exportOut, exportExclude, log)
		if err != nil {
			return err
		}
		log.Info().Str("out", exportOut).Int("files", n).Msg("site exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringSliceVar(&exportExclude, "exclude", nil, "Glob of static assets to leave out (repeatable)")
}

// exportSite writes every page plus the static assets under out and returns
// the number of files written.
func exportSite(r *renderer, cfg *Config, out string, exclude []string, log zerolog.Logger) (int, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return 0, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	pages := []struct {
		file string
		tmpl string
		data pageData
	}{
		{"index.html", "index.html", r.index()},
		{"privacy/index.html", "privacy.html", r.privacy()},
		{"terms/index.html", "terms.html", r.terms()},
	}

	written := 0
	for _, p := range pages {
		var buf bytes.Buffer
		if err := r.Render(&buf, p.tmpl, p.data); err != nil {
			return written, fmt.Errorf("render %s: %w", p.file, err)
		}
		if err := writeFile(filepath.Join(out, p.file), buf.Bytes()); err != nil {
			return written, err
		}
		written++
	}

	site := r.store.Site()
	for name, v := range map[string]any{
		"api/content.json":  site,
		"api/sections.json": content.Sections(site),
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", name, err)
		}
		if err := writeFile(filepath.Join(out, name), raw); err != nil {
			return written, err
		}
		written++
	}

	for src, dst := range map[string]string{cfg.StaticDir: "static", cfg.ImagesDir: "images"} {
		if src == "" {
			continue
		}
		n, err := copyAssets(src, filepath.Join(out, dst), exclude, log)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func copyAssets(src, dst string, exclude []string, log zerolog.Logger) (int, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		log.Debug().Str("dir", src).Msg("asset directory missing, skipped")
		return 0, nil
	}

	copied := 0
	err := doublestar.GlobWalk(os.DirFS(src), "**", func(path string, d fs.DirEntry) error {
		for _, pattern := range exclude {
			if ok, _ := doublestar.Match(pattern, path); ok {
				log.Debug().Str("file", path).Msg("excluded")
				return nil
			}
		}
		if err := copyFile(filepath.Join(src, path), filepath.Join(dst, path)); err != nil {
			return err
		}
		copied++
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return copied, fmt.Errorf("copy assets from %s: %w", src, err)
	}
	return copied, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
