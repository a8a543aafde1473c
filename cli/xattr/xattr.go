// xattr inspects and edits the extended attributes of files.
//
//  xattr [flags] list <file>
//  xattr [flags] get <file> <name>
//  xattr [flags] set <file> <name> <value>
//  xattr [flags] rm <file> <name>...
//  xattr [flags] dump <file>
//  xattr [flags] clear <file>
//  xattr [flags] check <file>
package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/intel-hpdd/logging/alert"
	"github.com/intel-hpdd/logging/debug"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	xattr "github.com/wastore/go-xattr"
	"github.com/wastore/go-xattr/pkg/mntent"
)

var (
	noFollow    bool
	showHidden  bool
	createOnly  bool
	replaceOnly bool
	optDebug    bool
)

func init() {
	flag.BoolVar(&noFollow, "P", false, "operate on symlinks themselves instead of their targets")
	flag.BoolVar(&showHidden, "C", false, "include compression attributes the OS normally hides (darwin)")
	flag.BoolVar(&createOnly, "c", false, "set: fail if the attribute already exists")
	flag.BoolVar(&replaceOnly, "r", false, "set: fail unless the attribute already exists")
	flag.BoolVar(&optDebug, "debug", false, "enable debug output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <list|get|set|rm|dump|clear|check> <file> [name [value]]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// readOpts are the options shared by every non-set operation.
func readOpts() xattr.Options {
	var opts xattr.Options
	if noFollow {
		opts |= xattr.NoFollow
	}
	if showHidden {
		opts |= xattr.ShowCompression
	}
	return opts
}

func setOpts() xattr.Options {
	var opts xattr.Options
	if noFollow {
		opts |= xattr.NoFollow
	}
	if createOnly {
		opts |= xattr.CreateOnly
	}
	if replaceOnly {
		opts |= xattr.ReplaceOnly
	}
	return opts
}

func main() {
	flag.Parse()
	if optDebug {
		debug.Enable()
	}

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, file := args[0], args[1]
	rest := args[2:]
	h := xattr.Path(file)

	var err error
	switch cmd {
	case "list":
		err = list(h)
	case "get":
		if len(rest) != 1 {
			usageError("get needs an attribute name")
		}
		err = get(h, rest[0])
	case "set":
		if len(rest) != 2 {
			usageError("set needs an attribute name and a value")
		}
		err = h.Set(rest[0], []byte(rest[1]), setOpts())
	case "rm":
		if len(rest) == 0 {
			usageError("rm needs at least one attribute name")
		}
		err = remove(h, rest)
	case "dump":
		err = dump(h)
	case "clear":
		err = xattr.RemoveAll(h, nil, readOpts())
	case "check":
		err = check(file)
	default:
		usageError(fmt.Sprintf("unknown command %q", cmd))
	}
	if err != nil {
		alert.Abort(err)
	}
}

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	flag.Usage()
	os.Exit(2)
}

func list(h xattr.Path) error {
	names, err := h.List(readOpts())
	if err != nil {
		return err
	}
	debug.Printf("%s: %d attributes", h, len(names))
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func get(h xattr.Path, name string) error {
	value, err := h.Get(name, readOpts())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(value)
	return err
}

func remove(h xattr.Path, names []string) error {
	for _, name := range names {
		debug.Printf("removing %s from %s", name, h)
		if err := h.Remove(name, readOpts()); err != nil {
			return err
		}
	}
	return nil
}

func dump(h xattr.Path) error {
	attrs, err := xattr.GetAll(h, nil, readOpts())
	if err != nil {
		return err
	}

	// Text values dump as plain strings; anything else is left to the
	// encoder's binary representation.
	out := make(map[string]interface{}, len(attrs))
	for name, value := range attrs {
		if utf8.Valid(value) {
			out[name] = string(value)
		} else {
			out[name] = value
		}
	}

	buf, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "marshal attributes")
	}
	_, err = os.Stdout.Write(buf)
	return err
}

// check reports the filesystem backing the target and probes whether
// it accepts user xattrs.
func check(file string) error {
	if entries, err := mntent.GetMounted(); err != nil {
		debug.Printf("no mount table: %v", err)
	} else if mnt, err := entries.ForPath(file); err == nil {
		fmt.Printf("%s: %s filesystem on %s (%s)\n", file, mnt.Type, mnt.Dir, mnt.Opts)
		if mnt.Type == "nfs" && !mnt.HasOpt("user_xattr") {
			alert.Warnf("%s is mounted without user_xattr", mnt.Dir)
		}
	}

	h := xattr.Path(file)
	const probe = "user.go-xattr.probe"
	if err := h.Set(probe, []byte("1"), 0); err != nil {
		return errors.Wrapf(err, "%s does not accept user xattrs", file)
	}
	if err := h.Remove(probe, 0); err != nil {
		return err
	}
	fmt.Printf("%s: user xattrs ok\n", file)
	return nil
}
