package data

// Entry is a single key/value pair within a Document.
type Entry struct {
	Key   string
	Value any
}

// Document is an insertion-ordered key/value mapping and the raw form of a
// command specification before compilation. Values are strings, booleans,
// nil (explicitly absent) or nested *Document values.
//
// Set never rejects duplicate keys; duplicates are detected during
// compilation as a structural error via DuplicateKey.
type Document struct {
	entries []Entry
}

// NewDocument creates an empty raw specification document.
func NewDocument() *Document {
	return &Document{}
}

// Set appends a key/value pair and returns the document for chaining.
func (d *Document) Set(key string, value any) *Document {
	d.entries = append(d.entries, Entry{Key: key, Value: value})
	return d
}

// Get returns the value for the first occurrence of key.
func (d *Document) Get(key string) (any, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has checks if a key exists within the document.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Len returns the number of entries, duplicates included.
func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns all entries in declaration order.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Keys returns all keys in declaration order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// DuplicateKey returns the first key that occurs more than once.
func (d *Document) DuplicateKey() (string, bool) {
	seen := make(map[string]struct{}, len(d.entries))
	for _, e := range d.entries {
		if _, ok := seen[e.Key]; ok {
			return e.Key, true
		}
		seen[e.Key] = struct{}{}
	}
	return "", false
}
