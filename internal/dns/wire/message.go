package wire

import (
	"bytes"
	"fmt"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

// ParseRequest decodes a full request: the header, then QuestionCount
// consecutive questions starting at offset 12. The first failing
// sub-decode aborts the parse; partial results are discarded.
func ParseRequest(buf []byte) (domain.Header, []domain.Question, error) {
	hdr, err := DecodeHeader(buf)
	if err != nil {
		return domain.Header{}, nil, fmt.Errorf("parse request: %w", err)
	}
	questions := make([]domain.Question, 0, hdr.QuestionCount)
	offset := HeaderLen
	for i := 0; i < int(hdr.QuestionCount); i++ {
		q, next, err := DecodeQuestion(buf, offset)
		if err != nil {
			return domain.Header{}, nil, fmt.Errorf("parse question %d: %w", i, err)
		}
		questions = append(questions, q)
		offset = next
	}
	return hdr, questions, nil
}

// ResponseHeader derives the header for a locally-built response: QR set,
// opcode and RD echoed, AA/TC/RA clear, Z zero, and RCODE 0 for a standard
// query or 4 (not implemented) for any other opcode. ID and question count
// are echoed; authority and additional counts are always zero.
func ResponseHeader(req domain.Header, answerCount uint16) domain.Header {
	reqFlags := domain.UnpackFlags(req.Flags)
	respFlags := domain.Flags{
		QR:     true,
		Opcode: reqFlags.Opcode,
		RD:     reqFlags.RD,
	}
	if reqFlags.Opcode != 0 {
		respFlags.RCode = 4
	}
	return domain.Header{
		ID:            req.ID,
		Flags:         respFlags.Pack(),
		QuestionCount: req.QuestionCount,
		AnswerCount:   answerCount,
	}
}

// BuildResponse assembles response bytes: header, then each question
// re-encoded in original order, then each answer. Names are written in
// full on output, even when they repeat; no compression is applied.
func BuildResponse(hdr domain.Header, questions []domain.Question, answers []domain.ResourceRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(EncodeHeader(hdr))
	for i, q := range questions {
		b, err := EncodeQuestion(q)
		if err != nil {
			return nil, fmt.Errorf("encode question %d: %w", i, err)
		}
		buf.Write(b)
	}
	for i, rr := range answers {
		b, err := EncodeRecord(rr)
		if err != nil {
			return nil, fmt.Errorf("encode answer %d: %w", i, err)
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// BuildQuery assembles a single-question upstream query that reuses the
// original transaction ID. Flags are fixed at RD=1 with all other bits
// zero; public resolvers expect the RD bit on forwarded queries.
func BuildQuery(id uint16, q domain.Question) ([]byte, error) {
	hdr := domain.Header{
		ID:            id,
		Flags:         domain.Flags{RD: true}.Pack(),
		QuestionCount: 1,
	}
	qb, err := EncodeQuestion(q)
	if err != nil {
		return nil, fmt.Errorf("encode query question: %w", err)
	}
	var buf bytes.Buffer
	buf.Write(EncodeHeader(hdr))
	buf.Write(qb)
	return buf.Bytes(), nil
}

// ParseAnswerSection decodes an upstream reply: the header, a skip over
// its question section, then AnswerCount answer records. Questions are
// skipped by full decode so that compressed names advance the cursor
// correctly. Authority and additional sections are not consumed.
func ParseAnswerSection(buf []byte) (domain.Header, []domain.ResourceRecord, error) {
	hdr, err := DecodeHeader(buf)
	if err != nil {
		return domain.Header{}, nil, fmt.Errorf("parse reply: %w", err)
	}
	offset := HeaderLen
	for i := 0; i < int(hdr.QuestionCount); i++ {
		_, next, err := DecodeQuestion(buf, offset)
		if err != nil {
			return domain.Header{}, nil, fmt.Errorf("skip reply question %d: %w", i, err)
		}
		offset = next
	}
	answers := make([]domain.ResourceRecord, 0, hdr.AnswerCount)
	for i := 0; i < int(hdr.AnswerCount); i++ {
		rr, next, err := DecodeRecord(buf, offset)
		if err != nil {
			return domain.Header{}, nil, fmt.Errorf("parse reply answer %d: %w", i, err)
		}
		answers = append(answers, rr)
		offset = next
	}
	return hdr, answers, nil
}
