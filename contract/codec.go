package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/sha3"

	"govlock/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeBytes mirrors writeString for opaque payload blobs.
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// writeAddress canonicalizes the address before writing, so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for values and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readString rebuilds length-prefixed UTF-8 text.
func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// readBytes copies a length-prefixed blob out of the buffer.
func (r *binReader) readBytes() ([]byte, error) {
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	b := append([]byte(nil), r.data[r.pos:r.pos+int(n)]...)
	r.pos += int(n)
	return b, nil
}

// readAddress pairs with writeAddress.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return sdk.Address(s), nil
}

// ------------------------------------------------------------------
// Record codecs
// ------------------------------------------------------------------

// encodeActionIdentity writes exactly the fields the action id commits to:
// recipient, value, signature, payload and the absolute execute time.
func encodeActionIdentity(w *binWriter, act *ScheduledAction) {
	w.writeAddress(act.Recipient)
	w.writeUint64(act.Value)
	w.writeString(act.Signature)
	w.writeBytes(act.Payload)
	w.writeInt64(act.ExecuteAt)
}

// DeriveActionID hashes the declared fields with legacy keccak-256. The id
// is a pure function of the fields, so an identical queue call at the same
// instant lands on the same id.
// Example payload: DeriveActionID(&ScheduledAction{Recipient: "hive:treasury", Value: 5})
func DeriveActionID(act *ScheduledAction) ActionID {
	w := newWriter()
	encodeActionIdentity(w, act)
	var id ActionID
	h := sha3.NewLegacyKeccak256()
	h.Write(w.bytes())
	copy(id[:], h.Sum(nil))
	return id
}

// EncodeAction packs a ScheduledAction into bytes for the host kv.
func EncodeAction(act *ScheduledAction) []byte {
	w := newWriter()
	encodeActionIdentity(w, act)
	w.writeBool(act.Executed)
	return w.bytes()
}

// DecodeAction rebuilds a ScheduledAction from stored bytes.
func DecodeAction(data []byte) (*ScheduledAction, error) {
	r := newReader(data)
	act := &ScheduledAction{}
	var err error
	if act.Recipient, err = r.readAddress(); err != nil {
		return nil, err
	}
	if act.Value, err = r.readUint64(); err != nil {
		return nil, err
	}
	if act.Signature, err = r.readString(); err != nil {
		return nil, err
	}
	if act.Payload, err = r.readBytes(); err != nil {
		return nil, err
	}
	if act.ExecuteAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if act.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	return act, nil
}

// EncodeSession serializes the voting session singleton.
func EncodeSession(s *VotingSession) []byte {
	w := newWriter()
	w.writeAddress(s.ProposedOwner)
	w.writeBool(s.VotingActive)
	w.writeInt64(s.VotingStart)
	w.writeInt64(s.ProposalDeadline)
	w.writeInt64(s.VotingEnd)
	w.writeUint64(s.VoteCount)
	w.writeUint64(s.VoteThreshold)
	return w.bytes()
}

// DecodeSession rebuilds the session singleton from stored bytes.
func DecodeSession(data []byte) (*VotingSession, error) {
	r := newReader(data)
	s := &VotingSession{}
	var err error
	if s.ProposedOwner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if s.VotingActive, err = r.readBool(); err != nil {
		return nil, err
	}
	if s.VotingStart, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.ProposalDeadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.VotingEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.VoteCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.VoteThreshold, err = r.readUint64(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeMembers serializes the ordered electorate list.
func EncodeMembers(members []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(members)))
	for _, m := range members {
		w.writeAddress(m)
	}
	return w.bytes()
}

// DecodeMembers rebuilds the ordered electorate list.
func DecodeMembers(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	members := make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		m, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// EncodeGraceBounds packs the delay bounds pair.
func EncodeGraceBounds(b *GraceBounds) []byte {
	w := newWriter()
	w.writeInt64(b.Min)
	w.writeInt64(b.Max)
	return w.bytes()
}

// DecodeGraceBounds rebuilds the delay bounds pair.
func DecodeGraceBounds(data []byte) (*GraceBounds, error) {
	r := newReader(data)
	b := &GraceBounds{}
	var err error
	if b.Min, err = r.readInt64(); err != nil {
		return nil, err
	}
	if b.Max, err = r.readInt64(); err != nil {
		return nil, err
	}
	return b, nil
}
