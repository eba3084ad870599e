// Package storezip builds store-only (uncompressed) ZIP archives in memory.
// The writer is deliberately minimal: no compression, no zip64, no extra
// fields. Offsets recorded for the central directory are checked against the
// true byte positions before the archive is finalized.
package storezip

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	localHeaderSig      = 0x04034b50
	centralDirSig       = 0x02014b50
	endOfCentralDirSig  = 0x06054b50
	versionNeeded       = 20
	methodStore         = 0
	crcPolynomial       = 0xEDB88320
	localHeaderLen      = 30
	centralDirRecordLen = 46
)

// File is one named payload to store in an archive.
type File struct {
	Name    string
	Content string
}

// entry binds a file to its encoded bytes, checksum, and the offset of its
// local header within the growing archive buffer.
type entry struct {
	name         string
	data         []byte
	crc          uint32
	headerOffset int
}

// Builder accumulates files and serializes them into a single archive.
// Not safe for concurrent use; build one per batch.
type Builder struct {
	buf     bytes.Buffer
	entries []entry
	now     func() time.Time
}

// NewBuilder returns an empty archive builder stamping entries with the
// current wall-clock time.
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// Build packages files into a single store-only archive.
func Build(files []File) ([]byte, error) {
	b := NewBuilder()
	for _, f := range files {
		b.Add(f)
	}
	return b.Bytes()
}

// Add appends one file to the archive: local header, filename, raw content.
// The local header offset is recorded for the central directory.
func (b *Builder) Add(f File) {
	data := []byte(f.Content)
	e := entry{
		name:         f.Name,
		data:         data,
		crc:          Checksum(data),
		headerOffset: b.buf.Len(),
	}

	modTime, modDate := dosDateTime(b.now())

	writeUint32(&b.buf, localHeaderSig)
	writeUint16(&b.buf, versionNeeded)
	writeUint16(&b.buf, 0) // general purpose flags
	writeUint16(&b.buf, methodStore)
	writeUint16(&b.buf, modTime)
	writeUint16(&b.buf, modDate)
	writeUint32(&b.buf, e.crc)
	writeUint32(&b.buf, uint32(len(data))) // compressed size == uncompressed
	writeUint32(&b.buf, uint32(len(data)))
	writeUint16(&b.buf, uint16(len(e.name)))
	writeUint16(&b.buf, 0) // extra field length
	b.buf.WriteString(e.name)
	b.buf.Write(data)

	b.entries = append(b.entries, e)
}

// Bytes emits the central directory and end record and returns the finished
// archive. Every recorded local-header offset is verified against the actual
// buffer contents first.
func (b *Builder) Bytes() ([]byte, error) {
	raw := b.buf.Bytes()
	for _, e := range b.entries {
		if e.headerOffset+4 > len(raw) ||
			binary.LittleEndian.Uint32(raw[e.headerOffset:]) != localHeaderSig {
			return nil, fmt.Errorf("storezip: recorded offset %d for %q does not address a local header", e.headerOffset, e.name)
		}
	}

	var out bytes.Buffer
	out.Write(raw)

	modTime, modDate := dosDateTime(b.now())
	centralDirOffset := out.Len()

	for _, e := range b.entries {
		writeUint32(&out, centralDirSig)
		writeUint16(&out, versionNeeded) // version made by
		writeUint16(&out, versionNeeded)
		writeUint16(&out, 0) // general purpose flags
		writeUint16(&out, methodStore)
		writeUint16(&out, modTime)
		writeUint16(&out, modDate)
		writeUint32(&out, e.crc)
		writeUint32(&out, uint32(len(e.data)))
		writeUint32(&out, uint32(len(e.data)))
		writeUint16(&out, uint16(len(e.name)))
		writeUint16(&out, 0) // extra field length
		writeUint16(&out, 0) // comment length
		writeUint16(&out, 0) // disk number start
		writeUint16(&out, 0) // internal attributes
		writeUint32(&out, 0) // external attributes
		writeUint32(&out, uint32(e.headerOffset))
		out.WriteString(e.name)
	}

	centralDirSize := out.Len() - centralDirOffset

	writeUint32(&out, endOfCentralDirSig)
	writeUint16(&out, 0) // this disk
	writeUint16(&out, 0) // disk with central directory
	writeUint16(&out, uint16(len(b.entries)))
	writeUint16(&out, uint16(len(b.entries)))
	writeUint32(&out, uint32(centralDirSize))
	writeUint32(&out, uint32(centralDirOffset))
	writeUint16(&out, 0) // comment length

	return out.Bytes(), nil
}

// Checksum computes a CRC-32 over data using the reflected 0xEDB88320
// polynomial, bit-serial and table-free.
func Checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crcPolynomial
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}

// dosDateTime encodes t in MS-DOS format: seconds/2, minutes, hours packed
// into the time word; day, month, years-since-1980 into the date word.
func dosDateTime(t time.Time) (uint16, uint16) {
	year := t.Year() - 1980
	if year < 0 {
		year = 0
	}
	dosTime := uint16(t.Second()/2) | uint16(t.Minute())<<5 | uint16(t.Hour())<<11
	dosDate := uint16(t.Day()) | uint16(t.Month())<<5 | uint16(year)<<9
	return dosTime, dosDate
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
