// Package shell interprets the line commands of the bmset REPL. Every set
// is kept by name; sizes and values are validated before they reach the
// bmset package so that bad input is reported instead of panicking.
package shell

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"bmset"
	"bmset/internal/common"
)

// ErrUnknownCommand is returned for a command word the shell does not know.
var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(sh *Shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":      {"new <name> [size]", 1, 2, (*Shell).cmdNew},
		"of":       {"of <name> <size> <v>...", 2, -1, (*Shell).cmdOf},
		"drop":     {"drop <name>", 1, 1, (*Shell).cmdDrop},
		"list":     {"list", 0, 0, (*Shell).cmdList},
		"insert":   {"insert <name> <v>...", 2, -1, (*Shell).cmdInsert},
		"remove":   {"remove <name> <v>...", 2, -1, (*Shell).cmdRemove},
		"contains": {"contains <name> <v>", 2, 2, (*Shell).cmdContains},
		"clear":    {"clear <name>", 1, 1, (*Shell).cmdClear},
		"len":      {"len <name>", 1, 1, (*Shell).cmdLen},
		"empty":    {"empty <name>", 1, 1, (*Shell).cmdEmpty},
		"show":     {"show <name>", 1, 1, (*Shell).cmdShow},

		"intersect": {"intersect <a> <b>", 2, 2, inPlace((*bmset.Set).Intersect)},
		"unite":     {"unite <a> <b>", 2, 2, inPlace((*bmset.Set).Unite)},
		"subtract":  {"subtract <a> <b>", 2, 2, inPlace((*bmset.Set).Subtract)},
		"invert":    {"invert <a>", 1, 1, (*Shell).cmdInvert},

		"intersection": {"intersection <dst> <a> <b>", 3, 3, functional(bmset.Set.Intersection)},
		"union":        {"union <dst> <a> <b>", 3, 3, functional(bmset.Set.Union)},
		"difference":   {"difference <dst> <a> <b>", 3, 3, functional(bmset.Set.Difference)},
		"complement":   {"complement <dst> <a>", 2, 2, (*Shell).cmdComplement},

		"subset":   {"subset <a> <b>", 2, 2, predicate(bmset.Set.IsSubset)},
		"superset": {"superset <a> <b>", 2, 2, predicate(bmset.Set.IsSuperset)},
		"disjoint": {"disjoint <a> <b>", 2, 2, predicate(bmset.Set.IsDisjoint)},
		"equal":    {"equal <a> <b>", 2, 2, predicate(bmset.Set.Equal)},

		"help": {"help", 0, 0, (*Shell).cmdHelp},
	}
}

// Commands returns the command words the shell accepts, sorted.
func Commands() []string {
	names := []string{"exit", "quit"}
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Shell holds named sets and executes commands against them.
type Shell struct {
	opts Options
	out  io.Writer
	log  *common.Logger
	sets map[string]bmset.Set
}

// New creates a shell with no sets.
func New(opts ...Option) (*Shell, error) {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkSize(o.DefaultSize); err != nil {
		return nil, errors.Wrap(err, "default size")
	}

	log := common.NewLogger(o.Out)
	log.Enabled = o.Timing
	return &Shell{
		opts: o,
		out:  o.Out,
		log:  log,
		sets: make(map[string]bmset.Set),
	}, nil
}

// Exec runs a single command line. quit is true when the line asks the
// shell to stop. Blank lines are ignored.
func (sh *Shell) Exec(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	name := strings.ToLower(parts[0])
	if name == "exit" || name == "quit" {
		return true, nil
	}

	cmd, ok := commands[name]
	if !ok {
		return false, errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	args := parts[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return false, errors.Newf("usage: %s", cmd.usage)
	}

	start := time.Now()
	if err := cmd.run(sh, args); err != nil {
		return false, errors.Wrap(err, name)
	}
	sh.log.LogDuration(start, "%s", name)
	return false, nil
}

// Set returns the set stored under name.
func (sh *Shell) Set(name string) (bmset.Set, bool) {
	s, ok := sh.sets[name]
	return s, ok
}

func (sh *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) lookup(name string) (bmset.Set, error) {
	s, ok := sh.sets[name]
	if !ok {
		return bmset.Set{}, errors.Newf("no set named %q", name)
	}
	return s, nil
}

// lookupPair fetches two sets that must share a size.
func (sh *Shell) lookupPair(a, b string) (bmset.Set, bmset.Set, error) {
	x, err := sh.lookup(a)
	if err != nil {
		return x, x, err
	}
	y, err := sh.lookup(b)
	if err != nil {
		return x, y, err
	}
	if x.Size() != y.Size() {
		return x, y, errors.Newf("size mismatch: %s has %d bytes, %s has %d", a, x.Size(), b, y.Size())
	}
	return x, y, nil
}

func checkSize(size int) error {
	if size < bmset.MinSize || size > bmset.MaxSize {
		return errors.Newf("size %d out of range [%d, %d]", size, bmset.MinSize, bmset.MaxSize)
	}
	return nil
}

func parseSize(arg string) (int, error) {
	size, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", arg)
	}
	return size, checkSize(size)
}

// parseValues parses element values that must fit in s.
func parseValues(s bmset.Reader, args []string) ([]uint8, error) {
	values := make([]uint8, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", arg)
		}
		if v < 0 || v >= s.Capacity() {
			return nil, errors.Newf("value %d out of range [0, %d)", v, s.Capacity())
		}
		values = append(values, uint8(v))
	}
	return values, nil
}

func (sh *Shell) cmdNew(args []string) error {
	size := sh.opts.DefaultSize
	if len(args) == 2 {
		var err error
		if size, err = parseSize(args[1]); err != nil {
			return err
		}
	}
	sh.sets[args[0]] = bmset.New(size)
	sh.printf("ok\n")
	return nil
}

func (sh *Shell) cmdOf(args []string) error {
	size, err := parseSize(args[1])
	if err != nil {
		return err
	}
	s := bmset.New(size)
	values, err := parseValues(s, args[2:])
	if err != nil {
		return err
	}
	s = bmset.Of(size, values...)
	sh.sets[args[0]] = s
	sh.printf("%v\n", s)
	return nil
}

func (sh *Shell) cmdDrop(args []string) error {
	if _, err := sh.lookup(args[0]); err != nil {
		return err
	}
	delete(sh.sets, args[0])
	sh.printf("ok\n")
	return nil
}

func (sh *Shell) cmdList(_ []string) error {
	names := make([]string, 0, len(sh.sets))
	for name := range sh.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		s := sh.sets[name]
		sh.printf("%s size=%d len=%d\n", name, s.Size(), s.Len())
	}
	return nil
}

func (sh *Shell) cmdInsert(args []string) error {
	return sh.mutateValues(args, (*bmset.Set).Insert)
}

func (sh *Shell) cmdRemove(args []string) error {
	return sh.mutateValues(args, (*bmset.Set).Remove)
}

func (sh *Shell) mutateValues(args []string, op func(*bmset.Set, uint8)) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	values, err := parseValues(s, args[1:])
	if err != nil {
		return err
	}
	for _, v := range values {
		op(&s, v)
	}
	sh.sets[args[0]] = s
	sh.printf("%v\n", s)
	return nil
}

func (sh *Shell) cmdContains(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	values, err := parseValues(s, args[1:])
	if err != nil {
		return err
	}
	sh.printf("%t\n", s.Contains(values[0]))
	return nil
}

func (sh *Shell) cmdClear(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	s.Clear()
	sh.sets[args[0]] = s
	sh.printf("ok\n")
	return nil
}

func (sh *Shell) cmdLen(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	sh.printf("%d\n", s.Len())
	return nil
}

func (sh *Shell) cmdEmpty(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	sh.printf("%t\n", s.IsEmpty())
	return nil
}

func (sh *Shell) cmdShow(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	sh.printf("%v\n", s)
	return nil
}

func (sh *Shell) cmdInvert(args []string) error {
	s, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	s.Invert()
	sh.sets[args[0]] = s
	sh.printf("%v\n", s)
	return nil
}

func (sh *Shell) cmdComplement(args []string) error {
	s, err := sh.lookup(args[1])
	if err != nil {
		return err
	}
	c := s.Complement()
	sh.sets[args[0]] = c
	sh.printf("%v\n", c)
	return nil
}

// inPlace adapts a binary mutator to a "<a> <b>" command storing into a.
func inPlace(op func(*bmset.Set, bmset.Set)) func(*Shell, []string) error {
	return func(sh *Shell, args []string) error {
		a, b, err := sh.lookupPair(args[0], args[1])
		if err != nil {
			return err
		}
		op(&a, b)
		sh.sets[args[0]] = a
		sh.printf("%v\n", a)
		return nil
	}
}

// functional adapts a binary operation to a "<dst> <a> <b>" command.
func functional(op func(bmset.Set, bmset.Set) bmset.Set) func(*Shell, []string) error {
	return func(sh *Shell, args []string) error {
		a, b, err := sh.lookupPair(args[1], args[2])
		if err != nil {
			return err
		}
		result := op(a, b)
		sh.sets[args[0]] = result
		sh.printf("%v\n", result)
		return nil
	}
}

func predicate(op func(bmset.Set, bmset.Set) bool) func(*Shell, []string) error {
	return func(sh *Shell, args []string) error {
		a, b, err := sh.lookupPair(args[0], args[1])
		if err != nil {
			return err
		}
		sh.printf("%t\n", op(a, b))
		return nil
	}
}

func (sh *Shell) cmdHelp(_ []string) error {
	usages := make([]string, 0, len(commands)+1)
	for _, cmd := range commands {
		usages = append(usages, cmd.usage)
	}
	usages = append(usages, "exit|quit")
	slices.Sort(usages)
	sh.printf("commands:\n")
	for _, u := range usages {
		sh.printf("  %s\n", u)
	}
	return nil
}
