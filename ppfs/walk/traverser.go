package walk

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ZanzyTHEbar/assert-lib"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sourcegraph/conc/pool"

	internal "github.com/ZanzyTHEbar/portable-pathfs/ppfs"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/config"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/dirtree"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/filesystem"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// Options controls a traversal.
type Options struct {
	// Recursive descends into subdirectories when true; otherwise only the
	// root's immediate entries are visited.
	Recursive bool
	// MaxDepth bounds the descent; -1 means unlimited.
	MaxDepth int
	// Index, when non-nil, receives every visited node keyed by path.
	Index *dirtree.PathIndex
}

// Analysis aggregates what a traversal saw.
type Analysis struct {
	TotalFiles int64
	TotalDirs  int64
	TotalSize  int64
	MaxDepth   int
	FileTypes  map[string]int64 // extension -> count
}

// Traverser walks directory trees concurrently, level by level, building an
// in-memory snapshot and aggregate statistics.
type Traverser struct {
	maxWorkers    int
	assertHandler *assert.AssertHandler
	mu            sync.RWMutex
	processedDirs map[string]bool
}

// NewTraverser creates a traverser with a worker count derived from the
// configuration, falling back to one based on available CPU cores.
func NewTraverser() *Traverser {
	maxWorkers := config.AppConfig.PPFS.WorkerCount
	if maxWorkers <= 0 {
		// CPU cores * 2 for I/O bound work, bounded both ways
		maxWorkers = min(max(runtime.NumCPU()*2, 4), 32)
	}

	return &Traverser{
		maxWorkers:    maxWorkers,
		assertHandler: assert.NewAssertHandler(),
		processedDirs: make(map[string]bool),
	}
}

// Traverse walks the tree rooted at root and returns its snapshot together
// with aggregate statistics. Entries matched by the root's ignore file are
// skipped.
func (t *Traverser) Traverse(ctx context.Context, root fspath.Path, opts Options) (*dirtree.Node, *Analysis, error) {
	if !filesystem.IsDirectory(root) {
		return nil, nil, &filesystem.Error{
			Op:   "traverse",
			Path: root,
			Kind: filesystem.ErrInvalidArgument,
		}
	}

	ignored, err := t.loadIgnoreFile(root)
	if err != nil {
		return nil, nil, err
	}

	rootNode := dirtree.NewDirectoryNode(root, nil)
	analysis := &Analysis{FileTypes: make(map[string]int64)}
	var analysisMu sync.Mutex
	atomic.AddInt64(&analysis.TotalDirs, 1)

	currentLevel := []*dirtree.Node{rootNode}
	for depth := 0; len(currentLevel) > 0; depth++ {
		if opts.MaxDepth != -1 && depth > opts.MaxDepth {
			break
		}
		if !opts.Recursive && depth > 0 {
			break
		}

		nextLevel := make([]*dirtree.Node, 0)
		var nextLevelMu sync.Mutex

		// Fresh pool per level; a waited pool cannot be reused.
		levelPool := pool.New().WithMaxGoroutines(t.maxWorkers).WithContext(ctx)

		for _, dirNode := range currentLevel {
			levelPool.Go(func(ctx context.Context) error {
				children, err := t.processDirectory(ctx, root, dirNode, ignored, opts, analysis, &analysisMu)
				if err != nil {
					slog.Error("error processing directory",
						"path", dirNode.Path.String(),
						"error", err)
					return err
				}
				nextLevelMu.Lock()
				nextLevel = append(nextLevel, children...)
				nextLevelMu.Unlock()
				return nil
			})
		}

		if err := levelPool.Wait(); err != nil {
			return nil, nil, err
		}

		analysisMu.Lock()
		if depth > analysis.MaxDepth {
			analysis.MaxDepth = depth
		}
		analysisMu.Unlock()

		currentLevel = nextLevel
	}

	if opts.Index != nil {
		rootNode.Walk(func(n *dirtree.Node) bool {
			if err := opts.Index.Insert(n); err != nil {
				slog.Warn("failed to index node", "path", n.Path.String(), "error", err)
			}
			return true
		})
	}

	slog.Debug("traversal completed",
		"root", root.String(),
		"dirs", analysis.TotalDirs,
		"files", analysis.TotalFiles,
		"max_depth", analysis.MaxDepth)

	return rootNode, analysis, nil
}

// processDirectory reads one directory, attaches its entries to dirNode and
// returns the subdirectory nodes for the next level.
func (t *Traverser) processDirectory(ctx context.Context, root fspath.Path, dirNode *dirtree.Node, ignored *ignore.GitIgnore, opts Options, analysis *Analysis, analysisMu *sync.Mutex) ([]*dirtree.Node, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	key := dirNode.Path.String()
	t.mu.RLock()
	seen := t.processedDirs[key]
	t.mu.RUnlock()
	if seen {
		return nil, nil
	}
	t.mu.Lock()
	t.processedDirs[key] = true
	t.mu.Unlock()

	entries, err := filesystem.ReadDirectory(dirNode.Path)
	if err != nil {
		return nil, err
	}

	var children []*dirtree.Node
	for _, entry := range entries {
		if t.isIgnored(root, entry.Path(), ignored) {
			continue
		}

		st, err := entry.SymlinkStatus()
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", entry.Path().String(), "error", err)
			continue
		}

		if st.IsDirectory() {
			child := dirtree.NewDirectoryNode(entry.Path(), dirNode)
			child.Status = st
			dirNode.AddChild(child)
			children = append(children, child)
			atomic.AddInt64(&analysis.TotalDirs, 1)
			continue
		}

		fileNode := dirtree.NewFileNode(entry.Path(), dirNode)
		fileNode.Status = st
		if fi, err := os.Lstat(entry.Path().String()); err == nil {
			fileNode.Size = fi.Size()
			fileNode.ModTime = fi.ModTime()
		}
		dirNode.AddFile(fileNode)

		atomic.AddInt64(&analysis.TotalFiles, 1)
		atomic.AddInt64(&analysis.TotalSize, fileNode.Size)
		if ext := strings.ToLower(entry.Path().Extension().String()); ext != "" {
			analysisMu.Lock()
			analysis.FileTypes[ext]++
			analysisMu.Unlock()
		}
	}

	return children, nil
}

// loadIgnoreFile compiles the ignore file at the traversal root, if present.
func (t *Traverser) loadIgnoreFile(root fspath.Path) (*ignore.GitIgnore, error) {
	name := config.AppConfig.PPFS.IgnoreFileName
	if name == "" {
		name = internal.DefaultIgnoreFileName
	}
	ignorePath := root.Join(name)

	if _, err := os.Stat(ignorePath.String()); err == nil {
		ignored, err := ignore.CompileIgnoreFile(ignorePath.String())
		if err != nil {
			return nil, &filesystem.Error{Op: "traverse", Path: ignorePath, Err: err}
		}
		return ignored, nil
	} else if !os.IsNotExist(err) {
		return nil, &filesystem.Error{Op: "traverse", Path: ignorePath, Err: err}
	}

	return nil, nil
}

// isIgnored matches the entry's root-relative generic path against the
// compiled ignore rules. The ignore file itself is always skipped.
func (t *Traverser) isIgnored(root, p fspath.Path, ignored *ignore.GitIgnore) bool {
	name := p.Filename().String()
	ignoreName := config.AppConfig.PPFS.IgnoreFileName
	if ignoreName == "" {
		ignoreName = internal.DefaultIgnoreFileName
	}
	if name == ignoreName {
		return true
	}
	if ignored == nil {
		return false
	}
	rel := strings.TrimPrefix(p.GenericString(), root.GenericString())
	rel = strings.TrimPrefix(rel, "/")
	return ignored.MatchesPath(rel)
}
