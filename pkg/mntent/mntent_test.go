// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mntent

import "testing"

var testFstab = `

# sample fstab

/dev/mapper/VolGroup00-LogVol00 /                       ext4    defaults        1 1
UUID=7ac5bec6-a098-4a06-9b2f-a940243b673c /boot                   ext4    defaults        1 2
/dev/mapper/VolGroup00-LogVol01 swap                    swap    defaults        0 0
fileserver:/export /mnt/nfs                             nfs     rw,user_xattr  0 0
`

var testMtab = `
rootfs / rootfs rw 0 0
sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
devtmpfs /dev devtmpfs rw,nosuid,size=495776k,nr_inodes=123944,mode=755 0 0
tmpfs /dev/shm tmpfs rw,nosuid,nodev 0 0
tmpfs /run tmpfs rw,nosuid,nodev,mode=755 0 0
/dev/mapper/VolGroup00-LogVol00 / ext4 rw,relatime,data=ordered 0 0
/dev/sda2 /boot ext4 rw,relatime,data=ordered 0 0
/dev/sdb1 /srv/scratch xfs rw,relatime 0 0
/dev/sdb2 /srv/scratch\040two xfs rw,relatime 0 0
fileserver:/export /mnt/nfs nfs rw,user_xattr 0 0
`

func TestGetByDir(t *testing.T) {
	cases := []struct{ tab, dir, name string }{
		{testFstab, "/", "/dev/mapper/VolGroup00-LogVol00"},
		{testFstab, "/mnt/nfs", "fileserver:/export"},
		{testFstab, "swap", "/dev/mapper/VolGroup00-LogVol01"},
		{testMtab, "/srv/scratch two", "/dev/sdb2"},
	}
	for _, test := range cases {
		entries, err := TestEntries(test.tab)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) == 0 {
			t.Fatalf("no entries found")
		}
		e, err := entries.ByDir(test.dir)
		if err != nil {
			t.Fatal(err)
		}
		if e.Fsname != test.name {
			t.Fatalf("wrong fsname %s, expected %s", e.Fsname, test.name)
		}
	}
}

func TestGetByType(t *testing.T) {
	cases := []struct {
		tab    string
		fsType string
		names  []string
	}{
		{testFstab, "ext4", []string{"/dev/mapper/VolGroup00-LogVol00", "UUID=7ac5bec6-a098-4a06-9b2f-a940243b673c"}},
		{testMtab, "xfs", []string{"/dev/sdb1", "/dev/sdb2"}},
	}
	for _, test := range cases {
		entries, err := TestEntries(test.tab)
		if err != nil {
			t.Fatal(err)
		}
		results, err := entries.ByType(test.fsType)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != len(test.names) {
			t.Fatalf("%s: got %d entries, expected %d", test.fsType, len(results), len(test.names))
		}
		for i, e := range results {
			if e.Fsname != test.names[i] {
				t.Fatalf("%s: wrong fsname %q, expected %q", test.fsType, e.Fsname, test.names[i])
			}
		}
	}
}

func TestForPath(t *testing.T) {
	entries, err := TestEntries(testMtab)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct{ path, dir string }{
		{"/etc/passwd", "/"},
		{"/boot/vmlinuz", "/boot"},
		{"/srv/scratch/data/file", "/srv/scratch"},
		{"/mnt/nfs", "/mnt/nfs"},
		{"/srv/scratchpad", "/"},
	}
	for _, test := range cases {
		e, err := entries.ForPath(test.path)
		if err != nil {
			t.Fatal(err)
		}
		if e.Dir != test.dir {
			t.Fatalf("%s: got mount %s, expected %s", test.path, e.Dir, test.dir)
		}
	}
}

func TestHasOpt(t *testing.T) {
	entries, err := TestEntries(testMtab)
	if err != nil {
		t.Fatal(err)
	}

	nfs, err := entries.ByDir("/mnt/nfs")
	if err != nil {
		t.Fatal(err)
	}
	if !nfs.HasOpt("user_xattr") {
		t.Errorf("user_xattr not found in %q", nfs.Opts)
	}
	if nfs.HasOpt("user") {
		t.Errorf("matched prefix of user_xattr")
	}

	dev, err := entries.ByDir("/dev")
	if err != nil {
		t.Fatal(err)
	}
	if !dev.HasOpt("size") {
		t.Errorf("size= option not found in %q", dev.Opts)
	}
}
