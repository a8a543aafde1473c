package mntent

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Entry is an entry in a filesystem table.
type Entry struct {
	Fsname string
	Dir    string
	Type   string
	Opts   string
	Freq   int
	Passno int
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s %s %s %d %d", e.Fsname, e.Dir, e.Type, e.Opts, e.Freq, e.Passno)
}

// HasOpt returns true if the mount option opt is present, either on
// its own or as the key of a key=value option.
func (e *Entry) HasOpt(opt string) bool {
	for _, o := range strings.Split(e.Opts, ",") {
		if o == opt || strings.HasPrefix(o, opt+"=") {
			return true
		}
	}
	return false
}

// Entries is a parsed filesystem table.
type Entries []*Entry

// ByDir returns the entry mounted at dir.
func (entries Entries) ByDir(dir string) (*Entry, error) {
	dir = filepath.Clean(dir)
	for _, mnt := range entries {
		if mnt.Dir == dir {
			return mnt, nil
		}
	}
	return nil, errors.Errorf("mount point %s not found", dir)
}

// ByType returns the entries whose filesystem type matches fstype.
func (entries Entries) ByType(fstype string) (Entries, error) {
	var selected Entries
	for _, mnt := range entries {
		if mnt.Type == fstype {
			selected = append(selected, mnt)
		}
	}
	return selected, nil
}

// ForPath returns the entry for the mount holding path, chosen by the
// longest matching mount point.
func (entries Entries) ForPath(path string) (*Entry, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	var best *Entry
	for _, mnt := range entries {
		if mnt.Dir != "/" && !strings.HasPrefix(path+"/", mnt.Dir+"/") {
			continue
		}
		if best == nil || len(mnt.Dir) > len(best.Dir) {
			best = mnt
		}
	}
	if best == nil {
		return nil, errors.Errorf("no mount found for %s", path)
	}
	return best, nil
}

// TestEntries parses a filesystem table from a string. Useful for
// tests and for tables not read from the standard location.
func TestEntries(tab string) (Entries, error) {
	return parseEntries(strings.NewReader(tab))
}

func parseEntries(r io.Reader) (Entries, error) {
	var entries Entries

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, errors.Errorf("malformed table entry %q", line)
		}

		e := &Entry{
			Fsname: unescape(fields[0]),
			Dir:    unescape(fields[1]),
			Type:   fields[2],
			Opts:   fields[3],
		}
		var err error
		if len(fields) > 4 {
			if e.Freq, err = strconv.Atoi(fields[4]); err != nil {
				return nil, errors.Wrapf(err, "bad freq in %q", line)
			}
		}
		if len(fields) > 5 {
			if e.Passno, err = strconv.Atoi(fields[5]); err != nil {
				return nil, errors.Wrapf(err, "bad passno in %q", line)
			}
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// Table names escape whitespace and backslashes getmntent style.
var unescaper = strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return unescaper.Replace(s)
}

// GetEntryByDir returns the mounted filesystem entry for the provided
// mount point.
func GetEntryByDir(dir string) (*Entry, error) {
	entries, err := GetMounted()
	if err != nil {
		return nil, err
	}
	return entries.ByDir(dir)
}

// GetEntriesByType returns the mounted filesystem entries that match
// the provided type.
func GetEntriesByType(fstype string) (Entries, error) {
	entries, err := GetMounted()
	if err != nil {
		return nil, err
	}
	return entries.ByType(fstype)
}
