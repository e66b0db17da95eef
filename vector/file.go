package vector

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amontero/boletin"
)

// On-disk layout inside the index directory.
const (
	vectorFile  = "index.vec"
	sidecarFile = "index_meta.jsonl"
)

// fileMagic identifies the vector file format.
var fileMagic = [4]byte{'B', 'V', 'E', 'C'}

const fileVersion uint32 = 1

// Load reads the index from dir, or returns a fresh empty index at the
// given dimensionality when no index has been persisted yet. A stored
// dimensionality different from dim is an ECONFLICT error; a sidecar
// out of step with the vector store (a crash mid-update) is EINTERNAL.
func Load(dir string, dim int) (*Index, error) {
	data, dataDim, err := readVectors(filepath.Join(dir, vectorFile))
	if os.IsNotExist(err) {
		return New(dim)
	}
	if err != nil {
		return nil, err
	}
	if dataDim != dim {
		return nil, boletin.Errorf(boletin.ECONFLICT, "stored index dimensionality %d does not match configured dimensionality %d", dataDim, dim)
	}

	entries, err := readSidecar(filepath.Join(dir, sidecarFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	rows := len(data) / dim
	if len(entries) != rows {
		return nil, boletin.Errorf(boletin.EINTERNAL, "sidecar has %d entries for %d vectors", len(entries), rows)
	}

	return &Index{dim: dim, data: data, entries: entries}, nil
}

// Save persists the index to dir, rewriting both files whole. Each file
// is written to a temporary name and renamed into place, so a crash
// before Save completes leaves the previous on-disk state readable.
func (x *Index) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	var vecBuf bytes.Buffer
	vecBuf.Write(fileMagic[:])
	if err := binary.Write(&vecBuf, binary.LittleEndian, fileVersion); err != nil {
		return err
	}
	if err := binary.Write(&vecBuf, binary.LittleEndian, uint32(x.dim)); err != nil {
		return err
	}
	if err := binary.Write(&vecBuf, binary.LittleEndian, uint32(x.Len())); err != nil {
		return err
	}
	if err := binary.Write(&vecBuf, binary.LittleEndian, x.data); err != nil {
		return err
	}

	var sideBuf bytes.Buffer
	enc := json.NewEncoder(&sideBuf)
	for _, entry := range x.entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode sidecar entry: %w", err)
		}
	}

	if err := writeAtomic(filepath.Join(dir, vectorFile), vecBuf.Bytes()); err != nil {
		return err
	}
	return writeAtomic(filepath.Join(dir, sidecarFile), sideBuf.Bytes())
}

// writeAtomic writes data to a temporary file and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// readVectors reads the flat vector file and returns the data and its
// dimensionality.
func readVectors(path string) ([]float32, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	r := bytes.NewReader(raw)

	var magic [4]byte
	if _, err := r.Read(magic[:]); err != nil || magic != fileMagic {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "vector file %s is not a recognized index", path)
	}
	var version, dim, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "truncated vector file %s", path)
	}
	if version != fileVersion {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "unsupported vector file version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "truncated vector file %s", path)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "truncated vector file %s", path)
	}

	data := make([]float32, int(dim)*int(count))
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, 0, boletin.Errorf(boletin.EINTERNAL, "truncated vector file %s", path)
	}
	return data, int(dim), nil
}

// readSidecar reads the JSONL sidecar, one entry per line in row order.
func readSidecar(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := []Entry{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, boletin.Errorf(boletin.EINTERNAL, "malformed sidecar line in %s: %v", path, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
