// Package generate drives code generation for a tree of declaration files:
// it finds .enum files, checks them alone and per directory, and writes the
// generated Go next to each declaration when the content changed.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/cli/config"
	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/cache"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
	"github.com/conduit-lang/enumgen/internal/utils"
)

// Status describes what happened to one output file
type Status string

const (
	// StatusWritten means the output was created or replaced.
	StatusWritten Status = "written"
	// StatusUnchanged means the output already held the generated content.
	StatusUnchanged Status = "unchanged"
	// StatusDryRun means the output would have been written.
	StatusDryRun Status = "dry-run"
	// StatusFailed means the declaration had errors and nothing was written.
	StatusFailed Status = "failed"
)

// FileResult is the outcome for one declaration file
type FileResult struct {
	Source      string           `json:"source"`
	Output      string           `json:"output"`
	Status      Status           `json:"status"`
	Enums       []string         `json:"enums,omitempty"`
	Diagnostics errors.ErrorList `json:"diagnostics,omitempty"`
	Code        []byte           `json:"-"`
}

// Summary is the outcome of a run
type Summary struct {
	Files []*FileResult `json:"files"`
}

// Diagnostics returns every diagnostic of the run
func (s *Summary) Diagnostics() errors.ErrorList {
	var all errors.ErrorList
	for _, f := range s.Files {
		all = append(all, f.Diagnostics...)
	}
	return all
}

// HasErrors reports whether any file failed
func (s *Summary) HasErrors() bool {
	return s.Diagnostics().HasErrors()
}

// Count returns the number of files with the given status
func (s *Summary) Count(status Status) int {
	n := 0
	for _, f := range s.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Runner generates Go code for declaration files
type Runner struct {
	cfg     *config.Config
	logger  *zap.Logger
	hasher  *cache.FileHasher
	results *cache.ResultCache

	// DryRun reports what would be written without touching the filesystem.
	DryRun bool
}

// NewRunner creates a runner. A nil logger is replaced by a no-op logger.
func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		logger:  logger,
		hasher:  cache.NewFileHasher(),
		results: cache.NewResultCache(),
	}
}

// Run processes every declaration file under paths, or under the
// configured source directory when no path is given
func (r *Runner) Run(ctx context.Context, paths ...string) (*Summary, error) {
	files, err := r.CollectFiles(paths)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("found declaration files", zap.Strings("paths", paths), zap.Int("count", len(files)))

	return r.RunFiles(ctx, files)
}

// RunFiles processes the given declaration files
func (r *Runner) RunFiles(ctx context.Context, files []string) (*Summary, error) {
	summary := &Summary{}
	byDir := make(map[string][]*FileResult)
	programs := make(map[*FileResult]*ast.Program)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, prog, err := r.checkFile(path)
		if err != nil {
			return summary, err
		}
		summary.Files = append(summary.Files, res)
		if res.Status != StatusFailed {
			dir := filepath.Dir(path)
			byDir[dir] = append(byDir[dir], res)
			programs[res] = prog
		}
	}

	r.checkPackages(byDir, programs)

	for _, res := range summary.Files {
		if res.Status == StatusFailed {
			continue
		}
		if err := r.write(res); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// checkFile checks and generates one file, reusing the cached result when
// the source did not change
func (r *Runner) checkFile(path string) (*FileResult, *ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	hash := r.hasher.HashContent(source)
	cached, ok := r.results.Lookup(path, hash)
	if ok {
		r.logger.Debug("reusing cached result", zap.String("file", path))
	} else {
		cached = r.compile(path, string(source), hash)
		r.results.Set(cached)
	}

	res := &FileResult{
		Source:      path,
		Output:      utils.OutputPath(path, r.cfg.OutputSuffix),
		Diagnostics: append(errors.ErrorList(nil), cached.Diagnostics...),
		Code:        cached.Output,
	}
	for _, e := range cached.Program.Enums {
		res.Enums = append(res.Enums, e.Name)
	}
	if cached.Output == nil {
		res.Status = StatusFailed
	}

	return res, cached.Program, nil
}

// compile runs the checker and the generator on one source
func (r *Runner) compile(path, source, hash string) *cache.Result {
	prog, diags := checker.CheckSource(path, source, r.cfg.CheckerOptions())
	result := &cache.Result{
		Path:        path,
		Hash:        hash,
		Program:     prog,
		Diagnostics: diags,
	}

	if diags.HasErrors() {
		r.logger.Debug("declaration has errors", zap.String("file", path), zap.Int("diagnostics", len(diags)))
		return result
	}

	gen := codegen.NewGenerator(r.cfg.CodegenOptions(filepath.Base(path)))
	code, err := gen.GenerateFile(prog)
	if err != nil {
		r.logger.Error("code generation failed", zap.String("file", path), zap.Error(err))
		result.Diagnostics = append(result.Diagnostics,
			errors.NewCodeGenFailed(prog.Location(), err.Error()).WithFile(path))
		return result
	}

	result.Output = code
	return result
}

// checkPackages runs the cross-file checks for each directory and marks
// every file of a failing directory as failed
func (r *Runner) checkPackages(byDir map[string][]*FileResult, programs map[*FileResult]*ast.Program) {
	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		results := byDir[dir]
		files := make([]checker.File, len(results))
		for i, res := range results {
			files[i] = checker.File{Path: res.Source, Program: programs[res]}
		}

		diags := checker.New(r.cfg.CheckerOptions()).CheckPackage(files)
		if !diags.HasErrors() {
			continue
		}

		r.logger.Debug("package check failed", zap.String("dir", dir), zap.Int("diagnostics", len(diags)))
		for _, res := range results {
			res.Status = StatusFailed
			for _, d := range diags {
				if d.File == res.Source {
					res.Diagnostics = append(res.Diagnostics, d)
				}
			}
		}
	}
}

// write stores the generated code unless the output already matches
func (r *Runner) write(res *FileResult) error {
	if r.hasher.SameContent(res.Output, res.Code) {
		res.Status = StatusUnchanged
		return nil
	}

	if r.DryRun {
		res.Status = StatusDryRun
		return nil
	}

	if err := os.WriteFile(res.Output, res.Code, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", res.Output, err)
	}
	res.Status = StatusWritten
	r.logger.Info("generated", zap.String("source", res.Source), zap.String("output", res.Output))
	return nil
}

// Forget drops cached results for path
func (r *Runner) Forget(path string) {
	r.results.Invalidate(path)
}

// Remove forgets a deleted declaration file and deletes its output when
// the output was generated by enumgen. It reports whether a file was
// deleted.
func (r *Runner) Remove(path string) (bool, error) {
	r.Forget(path)

	output := utils.OutputPath(path, r.cfg.OutputSuffix)
	content, err := os.ReadFile(output)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", output, err)
	}
	if !bytes.HasPrefix(content, []byte(codegen.Header)) {
		r.logger.Warn("keeping output not written by enumgen", zap.String("output", output))
		return false, nil
	}

	if r.DryRun {
		return true, nil
	}
	if err := os.Remove(output); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", output, err)
	}
	r.logger.Info("removed", zap.String("source", path), zap.String("output", output))
	return true, nil
}

// CollectFiles expands paths into declaration files. Directories are
// walked; files are taken as given. An empty list means the configured
// source directory.
func (r *Runner) CollectFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{r.cfg.SourceDir}
	}

	var files []string
	seen := make(map[string]bool)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}

		found := []string{p}
		if info.IsDir() {
			if found, err = utils.FindEnumFiles(p); err != nil {
				return nil, fmt.Errorf("failed to find %s files: %w", utils.EnumExt, err)
			}
		} else if filepath.Ext(p) != utils.EnumExt {
			return nil, fmt.Errorf("%s is not a %s file", p, utils.EnumExt)
		}

		for _, f := range found {
			if clean := filepath.Clean(f); !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
		}
	}
	return files, nil
}
