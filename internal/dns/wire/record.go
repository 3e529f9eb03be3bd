package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

// DecodeQuestion parses one question section entry at offset and returns
// it with the offset of the byte following it.
func DecodeQuestion(buf []byte, offset int) (domain.Question, int, error) {
	name, next, err := DecodeName(buf, offset)
	if err != nil {
		return domain.Question{}, 0, err
	}
	if next+4 > len(buf) {
		return domain.Question{}, 0, fmt.Errorf("%w: at %d", ErrTruncatedQuestion, next)
	}
	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(buf[next : next+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(buf[next+2 : next+4])),
	}
	return q, next + 4, nil
}

// EncodeQuestion serializes a question: name, then big-endian type and class.
func EncodeQuestion(q domain.Question) ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(name)
	_ = binary.Write(&buf, binary.BigEndian, uint16(q.Type))
	_ = binary.Write(&buf, binary.BigEndian, uint16(q.Class))
	return buf.Bytes(), nil
}

// DecodeRecord parses one resource record at offset: name, 10 bytes of
// fixed fields, then exactly RDLENGTH bytes of RDATA.
func DecodeRecord(buf []byte, offset int) (domain.ResourceRecord, int, error) {
	name, next, err := DecodeName(buf, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, err
	}
	if next+10 > len(buf) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: at %d", ErrTruncatedRecord, next)
	}
	rr := domain.ResourceRecord{
		Name:     name,
		Type:     domain.RRType(binary.BigEndian.Uint16(buf[next : next+2])),
		Class:    domain.RRClass(binary.BigEndian.Uint16(buf[next+2 : next+4])),
		TTL:      binary.BigEndian.Uint32(buf[next+4 : next+8]),
		RDLength: binary.BigEndian.Uint16(buf[next+8 : next+10]),
	}
	next += 10
	if next+int(rr.RDLength) > len(buf) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: declared %d bytes at %d", ErrTruncatedRData, rr.RDLength, next)
	}
	rr.Data = make([]byte, rr.RDLength)
	copy(rr.Data, buf[next:next+int(rr.RDLength)])
	return rr, next + int(rr.RDLength), nil
}

// EncodeRecord serializes a resource record, writing the stored RDLength.
// The producer is responsible for keeping RDLength consistent with Data;
// use domain.NewResourceRecord to get that by construction.
func EncodeRecord(rr domain.ResourceRecord) ([]byte, error) {
	name, err := EncodeName(rr.Name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(name)
	_ = binary.Write(&buf, binary.BigEndian, uint16(rr.Type))
	_ = binary.Write(&buf, binary.BigEndian, uint16(rr.Class))
	_ = binary.Write(&buf, binary.BigEndian, rr.TTL)
	_ = binary.Write(&buf, binary.BigEndian, rr.RDLength)
	buf.Write(rr.Data)
	return buf.Bytes(), nil
}
