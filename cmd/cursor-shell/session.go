package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/KevoDB/cursor/pkg/algorithm"
	"github.com/KevoDB/cursor/pkg/common/iterator"
	"github.com/KevoDB/cursor/pkg/common/iterator/bounded"
	"github.com/KevoDB/cursor/pkg/common/iterator/filtered"
	"github.com/KevoDB/cursor/pkg/common/iterator/sequence"
	"github.com/KevoDB/cursor/pkg/cursor"
)

var (
	errExit       = errors.New("exit")
	errNoSequence = errors.New("no sequence loaded, use LOAD")
	errReadOnly   = errors.New("active cursor is read-only")
	errOutOfRange = errors.New("position out of range")
	errUnsorted   = errors.New("range scans need a sorted sequence, use SORT")
)

const (
	cursorRW = "RW"
	cursorRO = "RO"
)

// session holds the sequence and the two cursors the shell manipulates: a
// mutable one and a read-only one over the same storage. Commands that move
// or read act on the active cursor.
type session struct {
	out    io.Writer
	data   []int
	rw     cursor.Adapter[int, *int]
	ro     cursor.Adapter[int, cursor.Const[int]]
	active string
	rng    *rand.Rand
}

func newSession(out io.Writer, seed int64) *session {
	return &session{out: out, active: cursorRW, rng: rand.New(rand.NewSource(seed))}
}

// prompt reflects the active cursor and its position
func (s *session) prompt() string {
	if s.data == nil {
		return "cursor> "
	}
	return fmt.Sprintf("cursor[%s %d/%d]> ", s.active, s.offset(), len(s.data))
}

func (s *session) offset() int {
	if s.active == cursorRO {
		return s.ro.Offset()
	}
	return s.rw.Offset()
}

// Exec runs one command line. errExit signals the caller to stop.
func (s *session) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := strings.ToUpper(parts[0]), parts[1:]

	switch cmd {
	case ".HELP":
		fmt.Fprint(s.out, helpText)
		return nil
	case ".EXIT":
		return errExit
	case "LOAD":
		return s.load(args)
	}

	if s.data == nil {
		return errNoSequence
	}

	switch cmd {
	case "USE":
		if len(args) != 1 {
			return fmt.Errorf("usage: USE RW|RO")
		}
		switch mode := strings.ToUpper(args[0]); mode {
		case cursorRW, cursorRO:
			s.active = mode
		default:
			return fmt.Errorf("unknown cursor %q", args[0])
		}
	case "BEGIN":
		return s.seek(0)
	case "END":
		return s.seek(len(s.data))
	case "SEEK":
		n, err := intArg(args, "SEEK offset")
		if err != nil {
			return err
		}
		return s.seek(n)
	case "+", "-":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = intArg(args, cmd+" [n]"); err != nil {
				return err
			}
		}
		if cmd == "-" {
			n = -n
		}
		return s.seek(s.offset() + n)
	case "GET":
		if s.offset() >= len(s.data) {
			return errOutOfRange
		}
		fmt.Fprintln(s.out, s.get(0))
	case "IDX":
		n, err := intArg(args, "IDX n")
		if err != nil {
			return err
		}
		if i := s.offset() + n; i < 0 || i >= len(s.data) {
			return errOutOfRange
		}
		fmt.Fprintln(s.out, s.get(n))
	case "SET":
		v, err := intArg(args, "SET value")
		if err != nil {
			return err
		}
		if s.active == cursorRO {
			return errReadOnly
		}
		if s.rw.Offset() >= len(s.data) {
			return errOutOfRange
		}
		*s.rw.Ref() = v
	case "DIST":
		fmt.Fprintf(s.out, "rw-ro %d\n", cursor.AsConst(s.rw).Diff(s.ro))
		fmt.Fprintf(s.out, "rw-begin %d\n", algorithm.Distance(cursor.Make(cursor.Begin(s.data)), s.rw))
	case "SORT":
		desc := len(args) > 0 && strings.EqualFold(args[0], "DESC")
		less := algorithm.Ascending[int]
		if desc {
			less = algorithm.Descending[int]
		}
		algorithm.Sort(cursor.Make(cursor.Begin(s.data)), cursor.Make(cursor.End(s.data)), less)
		fmt.Fprintln(s.out, "sorted")
	case "FIND":
		v, err := intArg(args, "FIND value")
		if err != nil {
			return err
		}
		it := algorithm.Find(cursor.MakeConst(cursor.Begin(s.data)), cursor.MakeConst(cursor.End(s.data)), v)
		if it.Offset() == len(s.data) {
			fmt.Fprintln(s.out, "not found")
			return nil
		}
		s.ro = it
		fmt.Fprintf(s.out, "found at %d\n", it.Offset())
	case "SHOW":
		s.show()
	case "SCAN":
		return s.scan(args)
	default:
		return fmt.Errorf("unknown command: %s", parts[0])
	}
	return nil
}

func (s *session) load(args []string) error {
	var data []int
	if len(args) == 2 && strings.EqualFold(args[0], "RANDOM") {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("usage: LOAD RANDOM n")
		}
		data = s.rng.Perm(n)
	} else {
		data = make([]int, 0, len(args))
		for _, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("not an integer: %q", a)
			}
			data = append(data, v)
		}
	}

	s.data = data
	s.rw = cursor.Make(cursor.Begin(data))
	s.ro = cursor.MakeConst(cursor.Begin(data))
	fmt.Fprintf(s.out, "loaded %d elements\n", len(data))
	return nil
}

// scan prints the values of the sequence, optionally limited to the value
// range [lo, hi) and to even or odd values.
func (s *session) scan(args []string) error {
	const usage = "usage: SCAN [lo hi] [EVEN|ODD]"

	var keep filtered.FilterFunc[int]
	if n := len(args); n > 0 {
		switch strings.ToUpper(args[n-1]) {
		case "EVEN":
			keep = func(v int) bool { return v%2 == 0 }
			args = args[:n-1]
		case "ODD":
			keep = func(v int) bool { return v%2 != 0 }
			args = args[:n-1]
		}
	}

	var iter iterator.Iterator[int] = sequence.NewSliceIterator(s.data, cmp.Compare[int])
	switch len(args) {
	case 0:
	case 2:
		lo, errLo := strconv.Atoi(args[0])
		hi, errHi := strconv.Atoi(args[1])
		if errLo != nil || errHi != nil {
			return errors.New(usage)
		}
		if !algorithm.IsSorted(cursor.MakeConst(cursor.Begin(s.data)), cursor.MakeConst(cursor.End(s.data)), algorithm.Ascending[int]) {
			return errUnsorted
		}
		iter = bounded.NewBoundedIterator(iter, cmp.Compare[int], &lo, &hi)
	default:
		return errors.New(usage)
	}
	if keep != nil {
		iter = filtered.NewFilteredIterator(iter, keep)
	}

	values := iterator.Collect(iter)
	if len(values) == 0 {
		fmt.Fprintln(s.out, "(none)")
		return nil
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(s.out, strings.Join(strs, " "))
	return nil
}

func (s *session) seek(off int) error {
	if off < 0 || off > len(s.data) {
		return errOutOfRange
	}
	if s.active == cursorRO {
		s.ro = cursor.MakeConst(cursor.At(s.data, off))
	} else {
		s.rw = cursor.Make(cursor.At(s.data, off))
	}
	return nil
}

func (s *session) get(n int) int {
	if s.active == cursorRO {
		return s.ro.Index(n)
	}
	return s.rw.Index(n)
}

// show prints the sequence with the mutable cursor marked by [] and the
// read-only one by <>. Positions at the end are marked after the last element.
func (s *session) show() {
	var b strings.Builder
	for i, v := range s.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(mark(i, v, s.rw.Offset(), s.ro.Offset()))
	}
	n := len(s.data)
	if s.rw.Offset() == n {
		b.WriteString(" []")
	}
	if s.ro.Offset() == n {
		b.WriteString(" <>")
	}
	fmt.Fprintln(s.out, strings.TrimSpace(b.String()))
}

func mark(i, v, rw, ro int) string {
	str := strconv.Itoa(v)
	if i == ro {
		str = "<" + str + ">"
	}
	if i == rw {
		str = "[" + str + "]"
	}
	return str
}

func intArg(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return n, nil
}
