package store

import (
	"github.com/goccy/go-json"
)

// envelope is the serialized form used by stores that keep a single blob
// per spec (local files, consul KV, s3 objects). It bundles the record
// metadata with the document payload.
type envelope struct {
	Record  *Record `json:"record"`
	Payload []byte  `json:"payload"`
}

// EncodeEnvelope serializes a record and its payload into one blob.
func EncodeEnvelope(record *Record, payload []byte) ([]byte, error) {
	return json.Marshal(envelope{
		Record:  record,
		Payload: payload,
	})
}

// DecodeEnvelope splits a stored blob back into payload and record.
func DecodeEnvelope(blob []byte) ([]byte, *Record, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, nil, err
	}
	return env.Payload, env.Record, nil
}
