package cache

import "encoding/binary"

// headerSize is the fixed-width prefix of every arena node: fwd/back
// bucket-chain links (arena byte offsets, -1 for "none"), a hit counter,
// a producer id (which evaluator step created this entry, for trace
// output), and the lengths of the two variable-length payloads that
// follow it (the canonical key bytes, then the serialized polynomial).
const headerSize = 4*2 + 4*2 + 4*2

const nilOffset = int32(-1)

type header struct {
	fwd, back      int32
	hits, producer uint32
	keyLen, valLen uint32
}

func putHeader(buf []byte, h header) {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.fwd))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.back))
	binary.LittleEndian.PutUint32(buf[8:12], h.hits)
	binary.LittleEndian.PutUint32(buf[12:16], h.producer)
	binary.LittleEndian.PutUint32(buf[16:20], h.keyLen)
	binary.LittleEndian.PutUint32(buf[20:24], h.valLen)
}

func getHeader(buf []byte) header {
	return header{
		fwd:      int32(binary.LittleEndian.Uint32(buf[0:4])),
		back:     int32(binary.LittleEndian.Uint32(buf[4:8])),
		hits:     binary.LittleEndian.Uint32(buf[8:12]),
		producer: binary.LittleEndian.Uint32(buf[12:16]),
		keyLen:   binary.LittleEndian.Uint32(buf[16:20]),
		valLen:   binary.LittleEndian.Uint32(buf[20:24]),
	}
}

func nodeSize(h header) int {
	return headerSize + int(h.keyLen) + int(h.valLen)
}

// writeNode serializes a node at arena[off:] and returns its total size.
func writeNode(arena []byte, off int, h header, key, val []byte) int {
	putHeader(arena[off:off+headerSize], h)
	copy(arena[off+headerSize:], key)
	copy(arena[off+headerSize+len(key):], val)
	return headerSize + len(key) + len(val)
}

func nodeKey(arena []byte, off int, h header) []byte {
	start := off + headerSize
	return arena[start : start+int(h.keyLen)]
}

func nodeVal(arena []byte, off int, h header) []byte {
	start := off + headerSize + int(h.keyLen)
	return arena[start : start+int(h.valLen)]
}

func setFwd(arena []byte, off int, fwd int32) {
	binary.LittleEndian.PutUint32(arena[off:off+4], uint32(fwd))
}

func setBack(arena []byte, off int, back int32) {
	binary.LittleEndian.PutUint32(arena[off+4:off+8], uint32(back))
}

func setHits(arena []byte, off int, hits uint32) {
	binary.LittleEndian.PutUint32(arena[off+8:off+12], hits)
}
