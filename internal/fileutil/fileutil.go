package fileutil

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/vector"
)

// Info describes one filesystem object.
type Info struct {
	Path    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// Kind names the object type the way the info command prints it.
func (i Info) Kind() string {
	switch {
	case i.Mode.IsRegular():
		return "Regular file"
	case i.Mode.IsDir():
		return "Directory"
	case i.Mode&fs.ModeSymlink != 0:
		return "Symbolic link"
	}
	return "Other"
}

// Permissions renders the rwx triplets for user, group and other.
func (i Info) Permissions() string {
	return i.Mode.Perm().String()[1:]
}

// Stat returns information about path after resolving it.
func Stat(path string) (Info, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return Info{}, err
	}
	st, err := os.Stat(resolved)
	if err != nil {
		return Info{}, &PathError{Op: "stat", Path: path, Err: err}
	}
	return Info{Path: resolved, Size: st.Size(), Mode: st.Mode(), ModTime: st.ModTime()}, nil
}

// Counts holds the totals reported by the count command.
type Counts struct {
	Lines int
	Words int
	Chars int
}

// CountReader tallies bytes, newline-terminated lines and words separated by
// spaces, tabs or newlines. A final line without a newline is still counted.
func CountReader(r io.Reader) (Counts, error) {
	var c Counts
	br := bufio.NewReader(r)
	inWord := false
	last := byte('\n')
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return c, err
		}
		c.Chars++
		last = b
		switch b {
		case '\n':
			c.Lines++
			inWord = false
		case ' ', '\t':
			inWord = false
		default:
			if !inWord {
				inWord = true
				c.Words++
			}
		}
	}
	if c.Chars > 0 && last != '\n' {
		c.Lines++
	}
	return c, nil
}

// Count opens path and tallies its contents.
func Count(path string) (Counts, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return Counts{}, err
	}
	f, err := os.Open(resolved)
	if err != nil {
		return Counts{}, &PathError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	c, err := CountReader(f)
	if err != nil {
		return c, &PathError{Op: "read", Path: path, Err: err}
	}
	return c, nil
}

// Entry is one visible directory member.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// List returns the non-hidden entries of dir sorted by name.
func List(dir string) ([]Entry, error) {
	resolved, err := Resolve(dir)
	if err != nil {
		return nil, err
	}
	des, err := os.ReadDir(resolved)
	if err != nil {
		return nil, &PathError{Op: "list", Path: dir, Err: err}
	}

	entries, err := vector.New[Entry](len(des))
	if err != nil {
		return nil, err
	}
	defer entries.Destroy()

	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !e.IsDir {
			if st, err := de.Info(); err == nil {
				e.Size = st.Size()
			}
		}
		if err := entries.Push(e); err != nil {
			return nil, err
		}
	}
	if err := entries.Sort(func(a, b Entry) int { return strings.Compare(a.Name, b.Name) }); err != nil {
		return nil, err
	}

	out := make([]Entry, entries.Size())
	copy(out, entries.Data())
	return out, nil
}

// Copy copies the regular file src to dst through a temporary file in the
// destination directory, renamed into place once fully written. It refuses
// to copy a file onto itself.
func Copy(src, dst string) (int64, error) {
	lg := logger.Component("files")

	if err := ValidatePath(dst); err != nil {
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	if err := validateName(dst); err != nil {
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	from, err := Resolve(src)
	if err != nil {
		return 0, err
	}
	srcInfo, err := os.Stat(from)
	if err != nil {
		return 0, &PathError{Op: "copy", Path: src, Err: err}
	}
	if !srcInfo.Mode().IsRegular() {
		return 0, &PathError{Op: "copy", Path: src, Err: ErrNotRegular}
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return 0, &PathError{Op: "copy", Path: dst, Err: ErrSameFile}
	}

	in, err := os.Open(from)
	if err != nil {
		return 0, &PathError{Op: "copy", Path: src, Err: err}
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp.*")
	if err != nil {
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	n, err := io.Copy(tmp, in)
	if err != nil {
		cleanup()
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	if err := tmp.Chmod(srcInfo.Mode().Perm()); err != nil {
		lg.Warn("could not set permissions on temporary file", "path", tmpName, "err", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return 0, &PathError{Op: "copy", Path: dst, Err: err}
	}

	lg.Debug("copied", "src", from, "dst", dst, "bytes", n)
	return n, nil
}
