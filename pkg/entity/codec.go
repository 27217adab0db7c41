package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
)

// The codec distinguishes three outcomes for a ledger buffer: absent (nil)
// yields ErrNotFound, present but undecodable yields ErrCorruptRecord, and
// present and well-formed yields the entity. Callers never receive a
// partially decoded record.

// EncodeUser serializes a user record.
func EncodeUser(u *User) ([]byte, error) {
	return json.Marshal(u)
}

// DecodeUser deserializes a user record read from key.
func DecodeUser(key string, buf []byte) (*User, error) {
	if buf == nil {
		return nil, errdefs.NewNotFoundError("user", key)
	}
	var u User
	if err := decodeStrict(buf, &u); err != nil {
		return nil, errdefs.NewCorruptRecordError("user", key, err)
	}
	if u.Name == "" || u.Aadhar == "" || !validUserStatus(u.Status) {
		return nil, errdefs.NewCorruptRecordError("user", key, fmt.Errorf("missing identity fields or bad status %q", u.Status))
	}
	return &u, nil
}

// EncodeProperty serializes a property record.
func EncodeProperty(p *Property) ([]byte, error) {
	return json.Marshal(p)
}

// DecodeProperty deserializes a property record read from key.
func DecodeProperty(key string, buf []byte) (*Property, error) {
	if buf == nil {
		return nil, errdefs.NewNotFoundError("property", key)
	}
	var p Property
	if err := decodeStrict(buf, &p); err != nil {
		return nil, errdefs.NewCorruptRecordError("property", key, err)
	}
	if p.PropertyID == "" || !validPropertyStatus(p.Status) {
		return nil, errdefs.NewCorruptRecordError("property", key, fmt.Errorf("missing property id or bad status %q", p.Status))
	}
	return &p, nil
}

// EncodeTrade serializes a trade record.
func EncodeTrade(tr *Trade) ([]byte, error) {
	return json.Marshal(tr)
}

// DecodeTrade deserializes a trade record read from key.
func DecodeTrade(key string, buf []byte) (*Trade, error) {
	if buf == nil {
		return nil, errdefs.NewNotFoundError("trade", key)
	}
	var tr Trade
	if err := decodeStrict(buf, &tr); err != nil {
		return nil, errdefs.NewCorruptRecordError("trade", key, err)
	}
	if tr.TradeID == "" {
		return nil, errdefs.NewCorruptRecordError("trade", key, fmt.Errorf("missing trade id"))
	}
	return &tr, nil
}

// decodeStrict rejects unknown fields so a buffer of the wrong record type
// surfaces as corrupt instead of silently decoding to zero values.
func decodeStrict(buf []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after record")
	}
	return nil
}
