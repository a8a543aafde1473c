package mntent

import "os"

const mountsPath = "/proc/self/mounts"

// GetMounted returns the entries from the mounted fs table.
func GetMounted() (Entries, error) {
	fp, err := os.Open(mountsPath)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return parseEntries(fp)
}
