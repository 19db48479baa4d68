package text

import (
	"github.com/cnf/structhash"
)

// --- File handles ----------------------------------------------------------

// FileInfo is a shared, read-only handle to one registered source unit. Many
// tokens and ranges reference the same handle; the handle stays alive as
// long as the longest-lived token referencing it.
type FileInfo struct {
	name    string
	content string
	chars   []rune // content decoded to Unicode scalar values
}

// Name returns the name the file was registered under.
func (f *FileInfo) Name() string {
	return f.name
}

// Content returns the full registered text.
func (f *FileInfo) Content() string {
	return f.content
}

// Chars returns the decoded character sequence of the file. Callers must not
// mutate it.
func (f *FileInfo) Chars() []rune {
	return f.chars
}

// Slice returns the substring between two character offsets. Offsets are
// indices into the decoded character sequence, not bytes.
func (f *FileInfo) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(f.chars) {
		to = len(f.chars)
	}
	if from >= to {
		return ""
	}
	return string(f.chars[from:to])
}

// Line returns the row-th line of the file, without the trailing newline.
// Rows are zero-based. Used by diagnostic renderers to excerpt source lines.
func (f *FileInfo) Line(row int) string {
	r := 0
	start := 0
	for i, c := range f.chars {
		if c == '\n' {
			if r == row {
				return string(f.chars[start:i])
			}
			r++
			start = i + 1
		}
	}
	if r == row {
		return string(f.chars[start:])
	}
	return ""
}

// --- Registry --------------------------------------------------------------

// fingerprinted holds the fields a file's identity is derived from.
type fingerprinted struct {
	Name    string `version:"1"`
	Content string `version:"1"`
}

// Registry owns source-file contents and issues FileInfo handles.
// Registering the same (name, content) pair twice yields the same handle, so
// tokens from repeated lexing runs over one source unit compare equal.
//
// A Registry is not safe for concurrent use; independent registries are.
type Registry struct {
	files []*FileInfo
	index map[string]*FileInfo // content fingerprint → handle
}

// NewRegistry creates an empty file registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*FileInfo),
	}
}

// Add registers a source unit and returns its handle. The registry keeps the
// only mutable reference to the text; everyone else reads through the handle.
func (reg *Registry) Add(name string, content string) *FileInfo {
	key, err := structhash.Hash(fingerprinted{Name: name, Content: content}, 1)
	if err == nil {
		if f, ok := reg.index[key]; ok {
			return f
		}
	}
	f := &FileInfo{
		name:    name,
		content: content,
		chars:   []rune(content),
	}
	reg.files = append(reg.files, f)
	if err == nil {
		reg.index[key] = f
	}
	return f
}

// Len returns the number of distinct registered files.
func (reg *Registry) Len() int {
	return len(reg.files)
}

// Each calls v for every registered file, in registration order.
func (reg *Registry) Each(v func(*FileInfo)) {
	for _, f := range reg.files {
		v(f)
	}
}
