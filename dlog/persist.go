package dlog

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/shanksdlog/ecpke/group"
)

// tableMagic identifies a persisted baby-step table file. Exactly 16 bytes.
var tableMagic = [16]byte{'E', 'C', 'P', 'K', 'E', '-', 'D', 'L', 'O', 'G', '-', 'T', 'A', 'B', 'L', 'E'}

// SaveTable writes t to path: a 16-byte magic, 2-byte curve id, 1-byte L,
// 1-byte T header, followed by one (33-byte compressed point, 8-byte
// little-endian index) record per baby-step entry in ascending index order.
func (t *Table) SaveTable(path string) (err error) {
	f, ferr := os.Create(path)
	if ferr != nil {
		return ErrIOFailed
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ErrIOFailed
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = w.Write(tableMagic[:]); err != nil {
		return ErrIOFailed
	}
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], t.curveID)
	hdr[2] = t.params.L
	hdr[3] = byte(t.params.T)
	if _, err = w.Write(hdr[:]); err != nil {
		return ErrIOFailed
	}

	type entry struct {
		pt  [33]byte
		idx uint64
	}
	entries := make([]entry, 0, len(t.baby))
	for pt, idx := range t.baby {
		entries = append(entries, entry{pt: pt, idx: idx})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

	var idxBuf [8]byte
	for _, e := range entries {
		if _, err = w.Write(e.pt[:]); err != nil {
			return ErrIOFailed
		}
		binary.LittleEndian.PutUint64(idxBuf[:], e.idx)
		if _, err = w.Write(idxBuf[:]); err != nil {
			return ErrIOFailed
		}
	}
	if err = w.Flush(); err != nil {
		return ErrIOFailed
	}
	return nil
}

// LoadTable reads a table previously written by SaveTable. It returns
// ErrTableMismatch if the file's curve id or (L, T) header does not match
// want, and ErrIOFailed on any I/O or framing error.
func LoadTable(g *group.Group, base group.Point, path string, want TableParams) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrIOFailed
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magic [16]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrIOFailed
	}
	if magic != tableMagic {
		return nil, ErrTableMismatch
	}

	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, ErrIOFailed
	}
	curveID := binary.BigEndian.Uint16(hdr[0:2])
	l := hdr[2]
	tt := int8(hdr[3])
	if curveID != CurveSecp256k1 || l != want.L || tt != want.T {
		return nil, ErrTableMismatch
	}

	params := TableParams{L: l, T: tt}
	n := params.BabySteps()
	baby := make(map[[33]byte]uint64, n)

	var rec [41]byte
	for {
		_, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrIOFailed
		}
		var pt [33]byte
		copy(pt[:], rec[:33])
		idx := binary.LittleEndian.Uint64(rec[33:41])
		baby[pt] = idx
	}

	gTable := rebuildGiant(g, base, params)
	return &Table{
		g:        g,
		base:     base,
		params:   params,
		curveID:  curveID,
		baby:     baby,
		giant:    gTable,
		giantNeg: g.Negate(gTable),
	}, nil
}

func rebuildGiant(g *group.Group, base group.Point, params TableParams) group.Point {
	return g.Mul(group.ScalarFromUint64(params.BabySteps()), base)
}
