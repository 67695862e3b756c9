package log

import "errors"

type RecordType uint8

// File format:
//  --- Block ----  <- 32K aligned
//  --- Block ----
//  ---  ...  ----
//  --- Block ----   <- last block may be short

// Block format:
//  ---- Block ----
//    -- record --
//    -- record --
//    --  ...   --
//    -- record --
//    -- zero padding (< HeaderSize) --

// Record format:
//   ---  header    ---  (crc:4|length:2|type:1) 7 bytes
//   --- data-slice ---
//
// A logical record larger than the space left in a block is split into a
// First, zero or more Middle and a Last fragment.

const (
	RecordTypeZero = RecordType(0)

	RecordTypeFull   = RecordType(1)
	RecordTypeFirst  = RecordType(2)
	RecordTypeMiddle = RecordType(3)
	RecordTypeLast   = RecordType(4)

	BlockSize = 32768
	// Header consists of checksum (4 bytes), length (2 bytes), record type (1 byte).
	HeaderSize = 4 + 2 + 1
)

var (
	ErrCorruption = errors.New("corrupted record")
)
