// Package endian provides byte order utilities for flow record encoding.
//
// IPFIX and NetFlow v9 carry every multi-byte field in network byte order, so
// the codec always writes through GetNetworkEngine().
//
// # Basic Usage
//
//	engine := endian.GetNetworkEngine()
//	buf = engine.AppendUint16(buf, templateID)
//
// Fields narrower than their in-memory type are written with PutUintN, which
// keeps the low-order bytes of the value:
//
//	b := make([]byte, 2)
//	endian.PutUintN(engine, b, 70000) // b == []byte{0x11, 0x70}
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetNetworkEngine returns the big-endian (network order) engine.
func GetNetworkEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x01
}

// PutUintN writes the low-order len(b) bytes of v into b using engine's byte order.
//
// Higher-order bytes that do not fit are dropped without error. len(b) must be
// between 1 and 8; PutUintN panics otherwise.
func PutUintN(engine EndianEngine, b []byte, v uint64) {
	n := len(b)
	if n < 1 || n > 8 {
		panic("PutUintN: width must be between 1 and 8")
	}

	var tmp [8]byte
	engine.PutUint64(tmp[:], v)

	if IsBigEndian(engine) {
		copy(b, tmp[8-n:])
	} else {
		copy(b, tmp[:n])
	}
}
